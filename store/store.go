// Package store persists users and notes and implements the owner-scoped
// listing query (pagination, search, sort). Two implementations exist:
// MySQL for production and an in-memory store used by tests.
package store

import (
	"context"
	"errors"

	"quicknotes/models"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicateUser = errors.New("username or email already taken")
)

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	UserByEmail(ctx context.Context, email string) (*models.User, error)
}

type NoteStore interface {
	CreateNote(ctx context.Context, note *models.Note) error
	// NoteByID fetches a note by id and owner in one query, so a miss and a
	// foreign note are indistinguishable to the caller.
	NoteByID(ctx context.Context, id, ownerID int) (*models.Note, error)
	DeleteNote(ctx context.Context, id, ownerID int) error
	ListNotes(ctx context.Context, ownerID int, params ListParams) (*ListResult, error)
}

type Store interface {
	UserStore
	NoteStore
}
