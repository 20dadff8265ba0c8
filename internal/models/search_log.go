package models

import (
	"time"

	"github.com/google/uuid"
)

// SearchLogEntry is one append-only audit row in log_agent_searches,
// written when an agent explicitly submits a search.
type SearchLogEntry struct {
	ID          uuid.UUID `json:"id"`
	AgentID     uuid.UUID `json:"agent_id"`
	SearchValue string    `json:"search_value"`
	// Criteria is the human-readable field label at the time of the search.
	Criteria  string    `json:"search_criteria"`
	CreatedAt time.Time `json:"created_at"`
}

// SearchTotal aggregates audit rows per criteria label for metrics export.
type SearchTotal struct {
	Criteria string
	Count    int64
}
