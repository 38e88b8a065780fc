package handlers

import (
	"net/http"

	"quicknotes/middleware"
	"quicknotes/store"
)

type homePage struct {
	basePage
	Result *store.ListResult
	Sort   string
	Search string
	Pages  []int
}

// Home renders the note listing. Anonymous visitors get a deterministic
// empty page instead of an error.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := store.ParseListParams(q.Get("page"), q.Get("sort"), q.Get("search"))

	result := store.EmptyListResult()
	if userID, ok := middleware.UserID(r); ok {
		var err error
		result, err = h.store.ListNotes(r.Context(), userID, params)
		if err != nil {
			h.serverError(w, r, err)
			return
		}
	}

	pages := make([]int, 0, result.TotalPages)
	for p := 1; p <= result.TotalPages; p++ {
		pages = append(pages, p)
	}

	h.render(w, r, "home", homePage{
		basePage: h.base(w, r),
		Result:   result,
		Sort:     params.Sort,
		Search:   params.Search,
		Pages:    pages,
	})
}
