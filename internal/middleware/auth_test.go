package middleware_test

import (
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"leadsearch/internal/middleware"
	"leadsearch/internal/models"
	"leadsearch/internal/testutil"
)

func TestRequireAgent(t *testing.T) {
	if os.Getenv("TEST_DATABASE_URL") == "" && os.Getenv("RUN_INTEGRATION_TESTS") == "" {
		t.Skip("Skipping integration test: TEST_DATABASE_URL not set")
	}

	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	testutil.CreateTestAgent(t, database, "mw-sub", 5)

	app := fiber.New()

	sessionMiddleware, _ := session.NewWithStore(session.Config{
		CookieHTTPOnly: true,
	})
	app.Use(sessionMiddleware)

	// Test-only login route to establish the session.
	app.Post("/test-login", func(c fiber.Ctx) error {
		sess := session.FromContext(c)
		sess.Set("agent_sub", c.Query("sub"))
		return c.SendString("ok")
	})

	authMiddleware := middleware.NewAuthMiddleware(database)
	app.Get("/protected", authMiddleware.RequireAgent, func(c fiber.Ctx) error {
		agent, ok := c.Locals("agent").(*models.Agent)
		if !ok {
			return c.Status(500).SendString("no agent in locals")
		}
		return c.SendString(agent.Sub)
	})

	// Unauthenticated request redirects to login.
	req, _ := http.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unauthenticated request failed: %v", err)
	}
	if resp.StatusCode < 300 || resp.StatusCode > 399 {
		t.Errorf("unauthenticated request status = %d, want a redirect", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Errorf("unauthenticated request redirected to %q, want /login", loc)
	}

	// Establish a session for a known agent.
	loginReq, _ := http.NewRequest("POST", "/test-login?sub=mw-sub", nil)
	loginResp, err := app.Test(loginReq)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	cookies := loginResp.Cookies()
	if len(cookies) == 0 {
		t.Fatal("login request returned no cookies")
	}

	// Authenticated request resolves the agent.
	authedReq, _ := http.NewRequest("GET", "/protected", nil)
	for _, c := range cookies {
		authedReq.AddCookie(c)
	}
	authedResp, err := app.Test(authedReq)
	if err != nil {
		t.Fatalf("authenticated request failed: %v", err)
	}
	body, _ := io.ReadAll(authedResp.Body)
	if string(body) != "mw-sub" {
		t.Errorf("authenticated request body = %q, want %q", body, "mw-sub")
	}

	// A session naming an unknown agent is destroyed and redirected.
	ghostLogin, _ := http.NewRequest("POST", "/test-login?sub=ghost", nil)
	ghostResp, err := app.Test(ghostLogin)
	if err != nil {
		t.Fatalf("ghost login failed: %v", err)
	}
	ghostReq, _ := http.NewRequest("GET", "/protected", nil)
	for _, c := range ghostResp.Cookies() {
		ghostReq.AddCookie(c)
	}
	ghostProtected, err := app.Test(ghostReq)
	if err != nil {
		t.Fatalf("ghost protected request failed: %v", err)
	}
	if ghostProtected.StatusCode < 300 || ghostProtected.StatusCode > 399 {
		t.Errorf("ghost request status = %d, want a redirect", ghostProtected.StatusCode)
	}
}
