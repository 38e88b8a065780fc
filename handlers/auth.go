package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"quicknotes/models"
	"quicknotes/store"
	"quicknotes/token"
)

func (h *Handlers) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "register", h.base(w, r))
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithFlash(w, r, "/register", "Invalid form submission")
		return
	}
	username := strings.TrimSpace(r.PostFormValue("username"))
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	if username == "" || email == "" || password == "" {
		redirectWithFlash(w, r, "/register", "Username, email and password are required")
		return
	}
	age, _ := strconv.Atoi(r.PostFormValue("age"))

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Age:          age,
	}
	if err := h.store.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrDuplicateUser) {
			redirectWithFlash(w, r, "/register", "That username or email is already registered")
			return
		}
		h.serverError(w, r, err)
		return
	}

	h.issueSession(w, r, user)
}

func (h *Handlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "login", h.base(w, r))
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithFlash(w, r, "/login", "Invalid form submission")
		return
	}
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")

	user, err := h.store.UserByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Same message as a wrong password so account existence
			// cannot be probed.
			redirectWithFlash(w, r, "/login", "Invalid email or password")
			return
		}
		h.serverError(w, r, err)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		redirectWithFlash(w, r, "/login", "Invalid email or password")
		return
	}

	h.issueSession(w, r, user)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.setTokenCookie(w, "", -1)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handlers) issueSession(w http.ResponseWriter, r *http.Request, user *models.User) {
	signed, err := token.Issue(user.ID, user.Email, h.jwtSecret, h.tokenTTL)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	h.setTokenCookie(w, signed, int(h.tokenTTL.Seconds()))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
