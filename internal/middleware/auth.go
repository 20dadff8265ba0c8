package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"leadsearch/internal/db"
)

// AuthMiddleware resolves the authenticated agent from the session.
type AuthMiddleware struct {
	db *db.DB
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(db *db.DB) *AuthMiddleware {
	return &AuthMiddleware{db: db}
}

// RequireAgent ensures the caller is an authenticated agent, redirecting to
// /login if not. The resolved agent is stored in locals; owner scoping is
// enforced by the handlers so an unscoped agent gets a clear 403 instead of
// a login loop.
func (m *AuthMiddleware) RequireAgent(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return c.Redirect().To("/login")
	}

	sub := sess.Get("agent_sub")
	if sub == nil {
		sess.Set("redirect_after_login", c.OriginalURL())
		return c.Redirect().To("/login")
	}

	agent, err := m.db.GetAgentBySub(c.Context(), sub.(string))
	if err != nil {
		sess.Destroy()
		return c.Redirect().To("/login")
	}

	c.Locals("agent", agent)
	return c.Next()
}
