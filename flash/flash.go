// Package flash implements one-shot status messages that survive a redirect
// via a short-lived cookie.
package flash

import (
	"encoding/base64"
	"net/http"
)

const cookieName = "flash"

// Set stores a message to be shown on the next page load. The value is
// base64-encoded because cookie values cannot carry spaces.
func Set(w http.ResponseWriter, msg string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    base64.URLEncoding.EncodeToString([]byte(msg)),
		Path:     "/",
		HttpOnly: true,
	})
}

// Pop returns the pending message, if any, and expires the cookie so the
// message is shown exactly once.
func Pop(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	msg, err := base64.URLEncoding.DecodeString(c.Value)
	if err != nil {
		return ""
	}
	return string(msg)
}
