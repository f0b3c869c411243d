// ABOUTME: Author behavioral stats persistence for SQLite
// ABOUTME: Caches provider counts so repeated ranking passes skip refetches
package storage

import (
	"database/sql"
	"time"

	"github.com/harper/resonate/internal/models"
)

// AuthorStore handles author stats persistence
type AuthorStore struct {
	db *DB
}

// NewAuthorStore creates a new AuthorStore
func NewAuthorStore(db *DB) *AuthorStore {
	return &AuthorStore{db: db}
}

// Save inserts or updates stats for an author
func (s *AuthorStore) Save(stats *models.AuthorStats) error {
	_, err := s.db.Exec(`
		INSERT INTO author_stats (author_id, followers, following, posts_per_day, recent_posts, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(author_id) DO UPDATE SET
			followers = excluded.followers,
			following = excluded.following,
			posts_per_day = excluded.posts_per_day,
			recent_posts = excluded.recent_posts,
			updated_at = excluded.updated_at
	`, stats.AuthorID, stats.Followers, stats.Following, stats.PostsPerDay, stats.RecentPosts, time.Now())

	return err
}

// Get retrieves stats for an author, returning nil if not cached
func (s *AuthorStore) Get(authorID string) (*models.AuthorStats, error) {
	var stats models.AuthorStats

	err := s.db.QueryRow(`
		SELECT author_id, followers, following, posts_per_day, recent_posts, updated_at
		FROM author_stats
		WHERE author_id = ?
	`, authorID).Scan(&stats.AuthorID, &stats.Followers, &stats.Following,
		&stats.PostsPerDay, &stats.RecentPosts, &stats.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

// GetFresh retrieves stats only if updated within maxAge
func (s *AuthorStore) GetFresh(authorID string, maxAge time.Duration) (*models.AuthorStats, error) {
	stats, err := s.Get(authorID)
	if err != nil || stats == nil {
		return nil, err
	}
	if time.Since(stats.UpdatedAt) > maxAge {
		return nil, nil
	}
	return stats, nil
}
