package store

import (
	"strconv"
	"strings"

	"quicknotes/models"
)

// PageSize is the fixed number of notes per listing page.
const PageSize = 5

const (
	SortNewest = "newest"
	SortOldest = "oldest"
)

// ListParams are the raw listing query parameters. Zero values are valid:
// they normalize to page 1, newest first, no search filter.
type ListParams struct {
	Page   int
	Sort   string
	Search string
}

// ParseListParams builds ListParams from raw query-string values.
func ParseListParams(page, sort, search string) ListParams {
	p, err := strconv.Atoi(page)
	if err != nil {
		p = 1
	}
	return ListParams{Page: p, Sort: sort, Search: search}.normalize()
}

func (p ListParams) normalize() ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Sort != SortOldest {
		p.Sort = SortNewest
	}
	p.Search = strings.TrimSpace(p.Search)
	return p
}

type ListResult struct {
	Notes       []models.Note `json:"notes"`
	CurrentPage int           `json:"current_page"`
	TotalPages  int           `json:"total_pages"`
	TotalNotes  int           `json:"total_notes"`
}

// EmptyListResult is what anonymous visitors get: a deterministic empty page.
func EmptyListResult() *ListResult {
	return &ListResult{Notes: []models.Note{}, CurrentPage: 1}
}

// clampPage reduces page to the last valid page for the given total count
// and returns the effective page plus the total page count.
func clampPage(page, total int) (int, int) {
	totalPages := (total + PageSize - 1) / PageSize
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	return page, totalPages
}
