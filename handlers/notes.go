package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"quicknotes/middleware"
	"quicknotes/models"
	"quicknotes/store"
)

const maxUploadBytes = 10 << 20

func (h *Handlers) CreateNote(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		redirectWithFlash(w, r, "/", "Invalid form submission")
		return
	}
	title := strings.TrimSpace(r.PostFormValue("title"))
	content := strings.TrimSpace(r.PostFormValue("content"))
	if title == "" || content == "" {
		redirectWithFlash(w, r, "/", "Title and content are required")
		return
	}

	// The upload happens before the insert so a storage failure never
	// leaves a half-created note behind.
	var mediaURL *string
	file, header, err := r.FormFile("media")
	if err == nil {
		defer file.Close()
		url, uploadErr := h.media.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
		if uploadErr != nil {
			h.logger.Error("media upload failed", "filename", header.Filename, "error", uploadErr)
			redirectWithFlash(w, r, "/", "Could not upload the attachment")
			return
		}
		if url != "" {
			mediaURL = &url
		}
	} else if !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		redirectWithFlash(w, r, "/", "Invalid attachment")
		return
	}

	note := &models.Note{
		Title:    title,
		Content:  content,
		MediaURL: mediaURL,
		UserID:   userID,
	}
	if err := h.store.CreateNote(r.Context(), note); err != nil {
		h.serverError(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type notePage struct {
	basePage
	Note *models.Note
}

func (h *Handlers) ShowNote(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r)
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		redirectWithFlash(w, r, "/", "Note not found")
		return
	}

	note, err := h.store.NoteByID(r.Context(), id, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			redirectWithFlash(w, r, "/", "Note not found")
			return
		}
		h.serverError(w, r, err)
		return
	}

	h.render(w, r, "note", notePage{basePage: h.base(w, r), Note: note})
}

func (h *Handlers) DeleteNote(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r)
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		redirectWithFlash(w, r, "/", "Note not found")
		return
	}

	if err := h.store.DeleteNote(r.Context(), id, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			redirectWithFlash(w, r, "/", "Note not found")
			return
		}
		h.serverError(w, r, err)
		return
	}
	redirectWithFlash(w, r, "/", "Note deleted")
}
