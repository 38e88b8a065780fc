package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"quicknotes/models"
)

// MemoryStore keeps everything in maps behind a mutex. It mirrors the MySQL
// store's semantics and backs the handler and pipeline tests.
type MemoryStore struct {
	mu         sync.RWMutex
	users      map[int]models.User
	notes      map[int]models.Note
	nextUserID int
	nextNoteID int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:      make(map[int]models.User),
		notes:      make(map[int]models.Note),
		nextUserID: 1,
		nextNoteID: 1,
	}
}

func (s *MemoryStore) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email || u.Username == user.Username {
			return ErrDuplicateUser
		}
	}
	user.ID = s.nextUserID
	s.nextUserID++
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	s.users[user.ID] = *user
	return nil
}

func (s *MemoryStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateNote(ctx context.Context, note *models.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	note.ID = s.nextNoteID
	s.nextNoteID++
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now()
	}
	s.notes[note.ID] = *note
	return nil
}

func (s *MemoryStore) NoteByID(ctx context.Context, id, ownerID int) (*models.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	note, ok := s.notes[id]
	if !ok || note.UserID != ownerID {
		return nil, ErrNotFound
	}
	return &note, nil
}

func (s *MemoryStore) DeleteNote(ctx context.Context, id, ownerID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	note, ok := s.notes[id]
	if !ok || note.UserID != ownerID {
		return ErrNotFound
	}
	delete(s.notes, note.ID)
	return nil
}

func (s *MemoryStore) ListNotes(ctx context.Context, ownerID int, params ListParams) (*ListResult, error) {
	params = params.normalize()

	s.mu.RLock()
	var matched []models.Note
	term := strings.ToLower(params.Search)
	for _, note := range s.notes {
		if note.UserID != ownerID {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(note.Title), term) &&
			!strings.Contains(strings.ToLower(note.Content), term) {
			continue
		}
		matched = append(matched, note)
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			if params.Sort == SortOldest {
				return a.CreatedAt.Before(b.CreatedAt)
			}
			return a.CreatedAt.After(b.CreatedAt)
		}
		if params.Sort == SortOldest {
			return a.ID < b.ID
		}
		return a.ID > b.ID
	})

	total := len(matched)
	page, totalPages := clampPage(params.Page, total)
	result := &ListResult{
		Notes:       []models.Note{},
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalNotes:  total,
	}
	start := (page - 1) * PageSize
	if start < total {
		end := start + PageSize
		if end > total {
			end = total
		}
		result.Notes = append(result.Notes, matched[start:end]...)
	}
	return result, nil
}
