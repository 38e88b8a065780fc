package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"

	"quicknotes/models"
)

type MySQLStore struct {
	db *sql.DB
}

func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

const mysqlErrDuplicateEntry = 1062

func (s *MySQLStore) CreateUser(ctx context.Context, user *models.User) error {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO users (username, email, password_hash, age) VALUES (?, ?, ?, ?)",
		user.Username, user.Email, user.PasswordHash, user.Age)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return ErrDuplicateUser
		}
		return fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	user.ID = int(id)
	return s.db.QueryRowContext(ctx,
		"SELECT created_at FROM users WHERE id = ?", user.ID).Scan(&user.CreatedAt)
}

func (s *MySQLStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, email, password_hash, age, created_at FROM users WHERE email = ?",
		email).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Age, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &user, nil
}

func (s *MySQLStore) CreateNote(ctx context.Context, note *models.Note) error {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO notes (title, content, media_url, user_id) VALUES (?, ?, ?, ?)",
		note.Title, note.Content, note.MediaURL, note.UserID)
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	note.ID = int(id)
	return s.db.QueryRowContext(ctx,
		"SELECT created_at FROM notes WHERE id = ?", note.ID).Scan(&note.CreatedAt)
}

func (s *MySQLStore) NoteByID(ctx context.Context, id, ownerID int) (*models.Note, error) {
	var note models.Note
	err := s.db.QueryRowContext(ctx,
		"SELECT id, title, content, media_url, user_id, created_at FROM notes WHERE id = ? AND user_id = ?",
		id, ownerID).Scan(&note.ID, &note.Title, &note.Content, &note.MediaURL, &note.UserID, &note.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select note: %w", err)
	}
	return &note, nil
}

func (s *MySQLStore) DeleteNote(ctx context.Context, id, ownerID int) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM notes WHERE id = ? AND user_id = ?", id, ownerID)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (s *MySQLStore) ListNotes(ctx context.Context, ownerID int, params ListParams) (*ListResult, error) {
	params = params.normalize()

	// Owner scoping comes first; the search predicate narrows within it.
	where := "WHERE user_id = ?"
	args := []any{ownerID}
	if params.Search != "" {
		where += " AND (LOWER(title) LIKE ? OR LOWER(content) LIKE ?)"
		pattern := "%" + likeEscaper.Replace(strings.ToLower(params.Search)) + "%"
		args = append(args, pattern, pattern)
	}

	var total int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM notes "+where, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count notes: %w", err)
	}

	page, totalPages := clampPage(params.Page, total)
	result := &ListResult{
		Notes:       []models.Note{},
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalNotes:  total,
	}
	if total == 0 {
		return result, nil
	}

	// Ties on created_at break on id so page boundaries stay stable.
	order := "ORDER BY created_at DESC, id DESC"
	if params.Sort == SortOldest {
		order = "ORDER BY created_at ASC, id ASC"
	}
	query := fmt.Sprintf(
		"SELECT id, title, content, media_url, user_id, created_at FROM notes %s %s LIMIT ? OFFSET ?",
		where, order)
	args = append(args, PageSize, (page-1)*PageSize)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select notes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var note models.Note
		if err := rows.Scan(&note.ID, &note.Title, &note.Content, &note.MediaURL, &note.UserID, &note.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		result.Notes = append(result.Notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select notes: %w", err)
	}
	return result, nil
}
