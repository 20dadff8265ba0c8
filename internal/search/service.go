// Package search orchestrates one lead-search request: input sanitization,
// audit logging, pagination and the field-dispatched lookup.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"leadsearch/internal/models"
	"leadsearch/internal/pagination"
	"leadsearch/internal/validation"
)

// ErrUnauthorized is returned before any query executes when the caller's
// owner or agent identity is missing. A defaulted-looking zero id must never
// reach the leads table.
var ErrUnauthorized = errors.New("missing owner or agent scope")

// LeadStore is the data access surface the service needs. *db.DB satisfies it.
type LeadStore interface {
	CountLeadsBy(ctx context.Context, field models.SearchField, text string, ownerID int64) (int, error)
	SearchLeadsBy(ctx context.Context, field models.SearchField, text string, ownerID int64, offset, limit int) ([]models.Lead, error)
	AppendSearchLog(ctx context.Context, agentID uuid.UUID, searchValue, criteria string) error
}

// Request carries the parsed inbound fields and the caller identity resolved
// by the auth collaborator.
type Request struct {
	FieldKey string // searchValue form field; unrecognized keys fall back to first name
	Text     string // searchText form field, raw
	Log      bool   // searchBtn present: a new search, not a pagination follow
	Page     int    // current_page form field
	OwnerID  int64
	AgentID  uuid.UUID
}

// Result is the outcome of one search: the rows of the requested page plus
// the derived pagination state.
type Result struct {
	Field      models.SearchField
	Text       string // sanitized search text, safe to echo into the page
	Rows       []models.Lead
	Pagination pagination.State
}

// Service runs the search pipeline against a LeadStore.
type Service struct {
	store   LeadStore
	perPage int
	logger  *slog.Logger
}

// New creates a search service. perPage below 1 is a configuration error.
func New(store LeadStore, perPage int, logger *slog.Logger) (*Service, error) {
	if perPage < 1 {
		return nil, pagination.ErrInvalidPerPage
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, perPage: perPage, logger: logger}, nil
}

// Search executes the linear pipeline: authorize, sanitize, optionally log,
// count, paginate, fetch. Empty search text never touches the leads table.
func (s *Service) Search(ctx context.Context, req Request) (*Result, error) {
	if req.OwnerID <= 0 || req.AgentID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	field := models.ParseSearchField(req.FieldKey)
	text := validation.SanitizeText(strings.TrimSpace(req.Text))

	if req.Log {
		// Best effort: a failed audit write is reported, never fails the
		// agent's search.
		if err := s.store.AppendSearchLog(ctx, req.AgentID, text, field.Label()); err != nil {
			s.logger.Error("failed to append search log",
				"agent_id", req.AgentID, "criteria", field.Label(), "error", err)
		}
	}

	page := req.Page
	if page < 1 {
		page = 1
	}

	// The query predicate uses the field's normalized form so counting and
	// fetching always agree.
	queryText := field.Normalize(text)

	total := 0
	if queryText != "" {
		var err error
		total, err = s.store.CountLeadsBy(ctx, field, queryText, req.OwnerID)
		if err != nil {
			return nil, fmt.Errorf("count leads: %w", err)
		}
	}

	state, err := pagination.Compute(page, total, s.perPage)
	if err != nil {
		return nil, err
	}

	var rows []models.Lead
	if queryText != "" {
		rows, err = s.store.SearchLeadsBy(ctx, field, queryText, req.OwnerID, state.Offset(), s.perPage)
		if err != nil {
			return nil, fmt.Errorf("search leads: %w", err)
		}
	}

	return &Result{
		Field:      field,
		Text:       text,
		Rows:       rows,
		Pagination: state,
	}, nil
}
