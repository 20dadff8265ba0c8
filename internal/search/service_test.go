package search

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"leadsearch/internal/models"
)

// mockStore records calls and serves a fixed multi-owner lead set.
type mockStore struct {
	leads []models.Lead

	countCalls  int
	searchCalls int
	logCalls    int

	lastField  models.SearchField
	lastText   string
	lastOwner  int64
	lastOffset int
	lastLimit  int

	loggedValue    string
	loggedCriteria string

	logErr error
}

func (m *mockStore) matches(field models.SearchField, text string, ownerID int64) []models.Lead {
	var out []models.Lead
	for _, l := range m.leads {
		if l.OwnerID == ownerID {
			out = append(out, l)
		}
	}
	return out
}

func (m *mockStore) CountLeadsBy(_ context.Context, field models.SearchField, text string, ownerID int64) (int, error) {
	m.countCalls++
	m.lastField = field
	m.lastText = text
	m.lastOwner = ownerID
	return len(m.matches(field, text, ownerID)), nil
}

func (m *mockStore) SearchLeadsBy(_ context.Context, field models.SearchField, text string, ownerID int64, offset, limit int) ([]models.Lead, error) {
	m.searchCalls++
	m.lastField = field
	m.lastText = text
	m.lastOwner = ownerID
	m.lastOffset = offset
	m.lastLimit = limit

	all := m.matches(field, text, ownerID)
	if offset < 0 {
		return all, nil
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := min(offset+limit, len(all))
	return all[offset:end], nil
}

func (m *mockStore) AppendSearchLog(_ context.Context, _ uuid.UUID, value, criteria string) error {
	m.logCalls++
	m.loggedValue = value
	m.loggedCriteria = criteria
	return m.logErr
}

func testLeads(owner int64, n int) []models.Lead {
	leads := make([]models.Lead, n)
	for i := range leads {
		leads[i] = models.Lead{ID: int64(i + 1), OwnerID: owner, FirstName: "Ann"}
	}
	return leads
}

func newTestService(t *testing.T, store *mockStore, perPage int) *Service {
	t.Helper()
	svc, err := New(store, perPage, slog.Default())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return svc
}

func TestSearch_Pipeline(t *testing.T) {
	store := &mockStore{leads: testLeads(5, 25)}
	svc := newTestService(t, store, 10)

	result, err := svc.Search(context.Background(), Request{
		FieldKey: "fname",
		Text:     "  Ann  ",
		Page:     3,
		OwnerID:  5,
		AgentID:  uuid.New(),
	})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if result.Field != models.FieldFirstName {
		t.Errorf("Search() field = %q, want fname", result.Field)
	}
	if result.Text != "Ann" {
		t.Errorf("Search() text = %q, want trimmed %q", result.Text, "Ann")
	}
	if result.Pagination.Page != 3 || result.Pagination.Pages != 3 {
		t.Errorf("Search() pagination = %+v, want page 3 of 3", result.Pagination)
	}
	if store.lastOffset != 20 || store.lastLimit != 10 {
		t.Errorf("Search() queried offset %d limit %d, want 20, 10", store.lastOffset, store.lastLimit)
	}
	if len(result.Rows) != 5 {
		t.Errorf("Search() rows = %d, want 5 on the last page", len(result.Rows))
	}
	if store.logCalls != 0 {
		t.Errorf("Search() wrote %d audit rows without searchBtn, want 0", store.logCalls)
	}
}

func TestSearch_EmptyTextSkipsQueries(t *testing.T) {
	store := &mockStore{leads: testLeads(5, 25)}
	svc := newTestService(t, store, 10)

	result, err := svc.Search(context.Background(), Request{
		FieldKey: "email",
		Text:     "",
		OwnerID:  5,
		AgentID:  uuid.New(),
	})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if store.countCalls != 0 || store.searchCalls != 0 {
		t.Errorf("Search() with empty text hit the store (%d counts, %d searches), want none",
			store.countCalls, store.searchCalls)
	}
	if len(result.Rows) != 0 {
		t.Errorf("Search() rows = %d, want 0", len(result.Rows))
	}
	if result.Pagination.Pages != 0 || result.Pagination.Page != 1 {
		t.Errorf("Search() pagination = %+v, want page 1 of 0", result.Pagination)
	}
}

func TestSearch_UnknownFieldFallsBack(t *testing.T) {
	store := &mockStore{leads: testLeads(5, 2)}
	svc := newTestService(t, store, 10)

	result, err := svc.Search(context.Background(), Request{
		FieldKey: "bogus",
		Text:     "ann",
		Log:      true,
		OwnerID:  5,
		AgentID:  uuid.New(),
	})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if result.Field != models.FieldFirstName {
		t.Errorf("Search() field = %q, want fallback to fname", result.Field)
	}
	if store.loggedCriteria != "First Name" {
		t.Errorf("Search() logged criteria %q, want %q", store.loggedCriteria, "First Name")
	}
}

func TestSearch_PhoneNormalizedBeforeQuery(t *testing.T) {
	store := &mockStore{leads: testLeads(5, 1)}
	svc := newTestService(t, store, 10)

	_, err := svc.Search(context.Background(), Request{
		FieldKey: "phone_number",
		Text:     "+1 (202) 555-0173",
		Log:      true,
		OwnerID:  5,
		AgentID:  uuid.New(),
	})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if store.lastText != "+12025550173" {
		t.Errorf("Search() queried text %q, want normalized %q", store.lastText, "+12025550173")
	}
	// The audit row records what the agent typed, after sanitization only.
	if store.loggedValue != "+1 (202) 555-0173" {
		t.Errorf("Search() logged value %q, want %q", store.loggedValue, "+1 (202) 555-0173")
	}
}

func TestSearch_SanitizesText(t *testing.T) {
	store := &mockStore{leads: testLeads(5, 1)}
	svc := newTestService(t, store, 10)

	result, err := svc.Search(context.Background(), Request{
		FieldKey: "lname",
		Text:     "<script>ann</script>",
		OwnerID:  5,
		AgentID:  uuid.New(),
	})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if result.Text != "ann" {
		t.Errorf("Search() text = %q, want markup stripped", result.Text)
	}
	if store.lastText != "ann" {
		t.Errorf("Search() queried %q, want sanitized %q", store.lastText, "ann")
	}
}

func TestSearch_MissingIdentityFailsClosed(t *testing.T) {
	store := &mockStore{leads: testLeads(5, 1)}
	svc := newTestService(t, store, 10)

	tests := []struct {
		name string
		req  Request
	}{
		{"no owner", Request{FieldKey: "fname", Text: "ann", AgentID: uuid.New()}},
		{"zero owner", Request{FieldKey: "fname", Text: "ann", OwnerID: 0, AgentID: uuid.New()}},
		{"negative owner", Request{FieldKey: "fname", Text: "ann", OwnerID: -1, AgentID: uuid.New()}},
		{"no agent", Request{FieldKey: "fname", Text: "ann", OwnerID: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Search(context.Background(), tt.req)
			if !errors.Is(err, ErrUnauthorized) {
				t.Errorf("Search() error = %v, want ErrUnauthorized", err)
			}
		})
	}
	if store.countCalls != 0 || store.searchCalls != 0 || store.logCalls != 0 {
		t.Error("Search() touched the store despite missing identity")
	}
}

func TestSearch_AuditFailureIsNonFatal(t *testing.T) {
	store := &mockStore{leads: testLeads(5, 3), logErr: errors.New("insert failed")}
	svc := newTestService(t, store, 10)

	result, err := svc.Search(context.Background(), Request{
		FieldKey: "fname",
		Text:     "ann",
		Log:      true,
		OwnerID:  5,
		AgentID:  uuid.New(),
	})
	if err != nil {
		t.Fatalf("Search() error = %v, audit failure must not abort the search", err)
	}
	if len(result.Rows) != 3 {
		t.Errorf("Search() rows = %d, want 3", len(result.Rows))
	}
}

func TestNew_RejectsInvalidPageSize(t *testing.T) {
	if _, err := New(&mockStore{}, 0, nil); err == nil {
		t.Error("New() with perPage 0 expected error")
	}
}
