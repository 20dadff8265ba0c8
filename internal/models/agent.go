package models

import (
	"time"

	"github.com/google/uuid"
)

// Agent represents a CRM operator authenticated via OIDC. OwnerID carries
// the tenant scope for every lead query the agent runs; an agent without one
// is authenticated but cannot search.
type Agent struct {
	ID        uuid.UUID `json:"id"`
	Sub       string    `json:"sub"` // OIDC subject identifier
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	OwnerID   *int64    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasOwnerScope returns true when the agent is bound to a tenant.
func (a *Agent) HasOwnerScope() bool {
	return a.OwnerID != nil
}
