package handlers

import (
	"encoding/base64"
	"io"
	"log/slog"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"quicknotes/media"
	"quicknotes/store"
	"quicknotes/web"
)

var testSecret = []byte("test-secret")

func newTestHandlers(t *testing.T) (*Handlers, *store.MemoryStore) {
	t.Helper()
	renderer, err := web.NewRenderer()
	if err != nil {
		t.Fatalf("building renderer: %v", err)
	}
	st := store.NewMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(st, media.Discard{}, renderer, logger, testSecret, time.Hour), st
}

func formBody(form url.Values) *strings.Reader {
	return strings.NewReader(form.Encode())
}

// flashMessage decodes the flash cookie set on a response, if any.
func flashMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name == "flash" && c.MaxAge >= 0 {
			msg, err := base64.URLEncoding.DecodeString(c.Value)
			if err != nil {
				t.Fatalf("decoding flash cookie: %v", err)
			}
			return string(msg)
		}
	}
	return ""
}

// tokenCookie returns the session token value set on a response, if any.
func tokenCookie(rr *httptest.ResponseRecorder) (string, bool) {
	for _, c := range rr.Result().Cookies() {
		if c.Name == "token" {
			return c.Value, c.MaxAge > 0
		}
	}
	return "", false
}
