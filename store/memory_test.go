package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quicknotes/models"
)

func TestMemoryStoreUsers(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	user := &models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash", Age: 30}
	require.NoError(t, s.CreateUser(ctx, user))
	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	t.Run("duplicate email rejected", func(t *testing.T) {
		dup := &models.User{Username: "alice2", Email: "alice@example.com", PasswordHash: "hash"}
		assert.ErrorIs(t, s.CreateUser(ctx, dup), ErrDuplicateUser)
	})

	t.Run("duplicate username rejected", func(t *testing.T) {
		dup := &models.User{Username: "alice", Email: "other@example.com", PasswordHash: "hash"}
		assert.ErrorIs(t, s.CreateUser(ctx, dup), ErrDuplicateUser)
	})

	t.Run("lookup by email", func(t *testing.T) {
		got, err := s.UserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, "alice", got.Username)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := s.UserByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemoryStoreNotes(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	note := &models.Note{Title: "t", Content: "c", UserID: 1}
	require.NoError(t, s.CreateNote(ctx, note))
	require.NotZero(t, note.ID)

	t.Run("owner can fetch", func(t *testing.T) {
		got, err := s.NoteByID(ctx, note.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, "t", got.Title)
	})

	t.Run("other user's lookup is a miss", func(t *testing.T) {
		_, err := s.NoteByID(ctx, note.ID, 2)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("other user's delete is a miss and leaves the note", func(t *testing.T) {
		assert.ErrorIs(t, s.DeleteNote(ctx, note.ID, 2), ErrNotFound)
		_, err := s.NoteByID(ctx, note.ID, 1)
		assert.NoError(t, err)
	})

	t.Run("owner delete removes the note", func(t *testing.T) {
		require.NoError(t, s.DeleteNote(ctx, note.ID, 1))
		_, err := s.NoteByID(ctx, note.ID, 1)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
