package db

import (
	"context"
	"time"

	"github.com/google/uuid"

	"leadsearch/internal/models"
)

// AppendSearchLog inserts one audit row. The table is append-only; rows are
// never updated.
func (d *DB) AppendSearchLog(ctx context.Context, agentID uuid.UUID, searchValue, criteria string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO log_agent_searches (agent_id, search_value, search_criteria)
		VALUES ($1, $2, $3)
	`, agentID, searchValue, criteria)
	return err
}

// GetSearchTotals returns audit row counts grouped by criteria label, for
// metrics export.
func (d *DB) GetSearchTotals(ctx context.Context) ([]models.SearchTotal, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT search_criteria, COUNT(*)
		FROM log_agent_searches
		GROUP BY search_criteria
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []models.SearchTotal
	for rows.Next() {
		var t models.SearchTotal
		if err := rows.Scan(&t.Criteria, &t.Count); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// PruneSearchLogs deletes audit rows older than the cutoff and returns how
// many were removed.
func (d *DB) PruneSearchLogs(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := d.Pool.Exec(ctx, `
		DELETE FROM log_agent_searches WHERE created_at < $1
	`, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
