// ABOUTME: Interest profile storage operations for SQLite
// ABOUTME: Implements singleton profile pattern with JSON array serialization
package storage

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/harper/resonate/internal/models"
)

// ProfileStore handles interest profile persistence
type ProfileStore struct {
	db *DB
}

// NewProfileStore creates a new ProfileStore
func NewProfileStore(db *DB) *ProfileStore {
	return &ProfileStore{db: db}
}

// Get retrieves the interest profile, returning nil if not found
func (s *ProfileStore) Get() (*models.InterestProfile, error) {
	var (
		handle        sql.NullString
		interestsJSON sql.NullString
		updatedAt     time.Time
	)

	err := s.db.QueryRow(`
		SELECT handle, interests, updated_at
		FROM interest_profile
		WHERE id = 1
	`).Scan(&handle, &interestsJSON, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	profile := &models.InterestProfile{
		LastUpdated: updatedAt,
	}

	if handle.Valid {
		profile.Handle = handle.String
	}

	if interestsJSON.Valid && interestsJSON.String != "" {
		if err := json.Unmarshal([]byte(interestsJSON.String), &profile.Interests); err != nil {
			profile.Interests = []string{}
		}
	} else {
		profile.Interests = []string{}
	}

	return profile, nil
}

// Save saves or updates the interest profile (upsert)
func (s *ProfileStore) Save(profile *models.InterestProfile) error {
	interestsJSON := []byte("[]")
	if profile.Interests != nil {
		data, err := json.Marshal(profile.Interests)
		if err != nil {
			return err
		}
		interestsJSON = data
	}

	_, err := s.db.Exec(`
		INSERT INTO interest_profile (id, handle, interests, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			handle = excluded.handle,
			interests = excluded.interests,
			updated_at = excluded.updated_at
	`, profile.Handle, string(interestsJSON), time.Now())

	return err
}
