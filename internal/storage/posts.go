// ABOUTME: Post persistence operations for SQLite
// ABOUTME: Stores candidate posts between fetch and ranking passes
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/harper/resonate/internal/models"
)

// PostStore handles post persistence
type PostStore struct {
	db *DB
}

// NewPostStore creates a new PostStore
func NewPostStore(db *DB) *PostStore {
	return &PostStore{db: db}
}

// Save inserts or updates a post
func (s *PostStore) Save(post *models.Post) error {
	if post.ID == "" {
		return fmt.Errorf("post ID is required")
	}

	_, err := s.db.Exec(`
		INSERT INTO posts (id, author_id, author_handle, text, created_at, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			author_id = excluded.author_id,
			author_handle = excluded.author_handle,
			text = excluded.text,
			created_at = excluded.created_at
	`, post.ID, post.AuthorID, post.AuthorHandle, post.Text, post.CreatedAt, time.Now())

	return err
}

// Get retrieves a post by ID, returning nil if not found
func (s *PostStore) Get(id string) (*models.Post, error) {
	var (
		post      models.Post
		handle    sql.NullString
		createdAt sql.NullTime
	)

	err := s.db.QueryRow(`
		SELECT id, author_id, author_handle, text, created_at
		FROM posts
		WHERE id = ?
	`, id).Scan(&post.ID, &post.AuthorID, &handle, &post.Text, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if handle.Valid {
		post.AuthorHandle = handle.String
	}
	if createdAt.Valid {
		post.CreatedAt = createdAt.Time
	}

	return &post, nil
}

// List returns the most recently fetched posts, newest first
func (s *PostStore) List(limit int) ([]models.Post, error) {
	rows, err := s.db.Query(`
		SELECT id, author_id, author_handle, text, created_at
		FROM posts
		ORDER BY fetched_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var posts []models.Post
	for rows.Next() {
		var (
			post      models.Post
			handle    sql.NullString
			createdAt sql.NullTime
		)
		if err := rows.Scan(&post.ID, &post.AuthorID, &handle, &post.Text, &createdAt); err != nil {
			return nil, err
		}
		if handle.Valid {
			post.AuthorHandle = handle.String
		}
		if createdAt.Valid {
			post.CreatedAt = createdAt.Time
		}
		posts = append(posts, post)
	}

	return posts, rows.Err()
}

// Delete removes a post by ID
func (s *PostStore) Delete(id string) error {
	_, err := s.db.Exec("DELETE FROM posts WHERE id = ?", id)
	return err
}
