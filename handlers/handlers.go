// Package handlers implements the HTTP surface: registration, login, and
// owner-scoped note CRUD with the paginated listing page.
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"quicknotes/flash"
	"quicknotes/media"
	"quicknotes/middleware"
	"quicknotes/store"
	"quicknotes/web"
)

type Handlers struct {
	store     store.Store
	media     media.Storage
	renderer  *web.Renderer
	logger    *slog.Logger
	jwtSecret []byte
	tokenTTL  time.Duration
}

func New(st store.Store, md media.Storage, rd *web.Renderer, logger *slog.Logger, jwtSecret []byte, tokenTTL time.Duration) *Handlers {
	return &Handlers{
		store:     st,
		media:     md,
		renderer:  rd,
		logger:    logger,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// basePage holds the fields every template expects from the layout.
type basePage struct {
	LoggedIn bool
	Flash    string
}

func (h *Handlers) base(w http.ResponseWriter, r *http.Request) basePage {
	_, loggedIn := middleware.UserID(r)
	return basePage{LoggedIn: loggedIn, Flash: flash.Pop(w, r)}
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, page string, data any) {
	if err := h.renderer.Render(w, page, data); err != nil {
		h.serverError(w, r, err)
	}
}

func (h *Handlers) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	http.Error(w, "Something went wrong", http.StatusInternalServerError)
}

// redirectWithFlash recovers a user-facing failure into a flash message on
// the target page.
func redirectWithFlash(w http.ResponseWriter, r *http.Request, url, msg string) {
	flash.Set(w, msg)
	http.Redirect(w, r, url, http.StatusSeeOther)
}

func (h *Handlers) setTokenCookie(w http.ResponseWriter, value string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
