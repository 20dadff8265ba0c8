package handlers

import (
	"errors"
	"html"
	"html/template"
	"regexp"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"leadsearch/internal/config"
	"leadsearch/internal/models"
	"leadsearch/internal/pagination"
	"leadsearch/internal/search"
)

// SearchHandler renders the lead search page.
type SearchHandler struct {
	svc *search.Service
	cfg *config.Config
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(svc *search.Service, cfg *config.Config) *SearchHandler {
	return &SearchHandler{svc: svc, cfg: cfg}
}

// LeadRow is the view model for one results table row. Highlighted cells are
// escaped before the match markers are applied.
type LeadRow struct {
	Num     int
	Name    template.HTML
	Email   template.HTML
	Phone   template.HTML
	Status  string
	Created string
}

// PageLink is the view model for one pager entry.
type PageLink struct {
	Num     int
	URL     string
	Current bool
}

// FieldOption is one entry of the search-by dropdown.
type FieldOption struct {
	Key      string
	Label    string
	Selected bool
}

// Index handles GET /leads/search.
func (h *SearchHandler) Index(c fiber.Ctx) error {
	agent, ok := c.Locals("agent").(*models.Agent)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	if !agent.HasOwnerScope() {
		return fiber.NewError(fiber.StatusForbidden, "no owner scope assigned to this agent")
	}

	page, _ := strconv.Atoi(c.Query("current_page", "1"))

	result, err := h.svc.Search(c.Context(), search.Request{
		FieldKey: c.Query("searchValue", string(models.FieldFirstName)),
		Text:     c.Query("searchText", ""),
		Log:      c.Query("searchBtn") != "",
		Page:     page,
		OwnerID:  *agent.OwnerID,
		AgentID:  agent.ID,
	})
	if errors.Is(err, search.ErrUnauthorized) {
		return fiber.NewError(fiber.StatusForbidden, "no owner scope assigned to this agent")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "lead storage unavailable")
	}

	baseParams := map[string]string{
		"searchValue": string(result.Field),
		"searchText":  c.Query("searchText", ""),
	}

	data := fiber.Map{
		"Agent":      agent,
		"Fields":     fieldOptions(result.Field),
		"SearchText": result.Text,
		"Rows":       leadRows(result, result.Pagination.Offset()),
		"Pagination": result.Pagination,
		"PrevURL":    pagination.PageQuery(baseParams, result.Pagination.Prev),
		"NextURL":    pagination.PageQuery(baseParams, result.Pagination.Next),
		"PageLinks":  pageLinks(baseParams, result.Pagination),
	}
	return c.Render("search", MergeBranding(data, h.cfg))
}

// fieldOptions builds the search-by dropdown with the active field selected.
func fieldOptions(active models.SearchField) []FieldOption {
	opts := make([]FieldOption, len(models.SearchFields))
	for i, f := range models.SearchFields {
		opts[i] = FieldOption{Key: string(f), Label: f.Label(), Selected: f == active}
	}
	return opts
}

// leadRows converts leads into display rows, numbering from the page offset.
func leadRows(result *search.Result, offset int) []LeadRow {
	rows := make([]LeadRow, len(result.Rows))
	for i, lead := range result.Rows {
		rows[i] = LeadRow{
			Num:     offset + i + 1,
			Name:    highlight(lead.FullName(), result.Text),
			Email:   highlight(lead.Email, result.Text),
			Phone:   highlight(lead.PhoneNumber, result.Text),
			Status:  lead.Status,
			Created: lead.RealDate.Format("2006-01-02"),
		}
	}
	return rows
}

// pageLinks builds the numbered pager entries.
func pageLinks(baseParams map[string]string, state pagination.State) []PageLink {
	links := make([]PageLink, 0, max(1, state.Pages))
	for p := 1; p <= max(1, state.Pages); p++ {
		links = append(links, PageLink{
			Num:     p,
			URL:     pagination.PageQuery(baseParams, p),
			Current: p == state.Page,
		})
	}
	return links
}

// highlight escapes text and wraps case-insensitive matches of the sanitized
// query in <mark>. Escaping happens first; the marker only ever wraps
// already-escaped content. query arrives sanitized, so it is unescaped before
// being turned into a match pattern against the raw cell text.
func highlight(text, query string) template.HTML {
	escaped := html.EscapeString(text)
	if query == "" || text == "" {
		return template.HTML(escaped)
	}

	plain := html.UnescapeString(query)
	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(html.EscapeString(plain)))
	if err != nil {
		return template.HTML(escaped)
	}

	marked := re.ReplaceAllString(escaped, "<mark>$0</mark>")
	return template.HTML(marked)
}
