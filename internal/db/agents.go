package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"leadsearch/internal/models"
)

var ErrAgentNotFound = errors.New("agent not found")

// UpsertAgent creates or updates an agent based on their OIDC subject.
func (d *DB) UpsertAgent(ctx context.Context, agent *models.Agent) error {
	query := `
		INSERT INTO agents (sub, email, name, owner_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (sub) DO UPDATE SET
			email = EXCLUDED.email,
			name = EXCLUDED.name,
			owner_id = COALESCE(EXCLUDED.owner_id, agents.owner_id),
			updated_at = NOW()
		RETURNING id, owner_id, created_at, updated_at
	`

	return d.Pool.QueryRow(ctx, query,
		agent.Sub,
		agent.Email,
		agent.Name,
		agent.OwnerID,
	).Scan(&agent.ID, &agent.OwnerID, &agent.CreatedAt, &agent.UpdatedAt)
}

// GetAgentBySub retrieves an agent by their OIDC subject identifier.
func (d *DB) GetAgentBySub(ctx context.Context, sub string) (*models.Agent, error) {
	query := `
		SELECT id, sub, email, name, owner_id, created_at, updated_at
		FROM agents WHERE sub = $1
	`

	var agent models.Agent
	err := d.Pool.QueryRow(ctx, query, sub).Scan(
		&agent.ID,
		&agent.Sub,
		&agent.Email,
		&agent.Name,
		&agent.OwnerID,
		&agent.CreatedAt,
		&agent.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAgentNotFound
	}
	if err != nil {
		return nil, err
	}

	return &agent, nil
}
