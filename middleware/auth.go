package middleware

import (
	"context"
	"net/http"

	"quicknotes/flash"
	"quicknotes/token"
)

// CookieName is the session cookie the token travels in.
const CookieName = "token"

type contextKey int

const (
	userIDKey contextKey = iota
	emailKey
)

// UserID returns the authenticated user's id from the request context.
// ok is false for anonymous requests.
func UserID(r *http.Request) (int, bool) {
	id, ok := r.Context().Value(userIDKey).(int)
	return id, ok
}

// Email returns the authenticated user's email from the request context.
func Email(r *http.Request) (string, bool) {
	email, ok := r.Context().Value(emailKey).(string)
	return email, ok
}

// Identify resolves the token cookie into a request identity. A missing or
// invalid cookie leaves the request anonymous; it is never an error here —
// routes that need authentication wrap RequireAuth on top.
func Identify(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(CookieName)
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r)
				return
			}
			claims, err := token.Verify(c.Value, secret)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			ctx = context.WithValue(ctx, emailKey, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth redirects anonymous requests to the login page with a flash
// message. It assumes Identify already ran.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserID(r); !ok {
			flash.Set(w, "Please log in first")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithUserID stamps an identity onto a request context. Handler tests use it
// in place of the full middleware chain.
func WithUserID(r *http.Request, id int) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userIDKey, id))
}
