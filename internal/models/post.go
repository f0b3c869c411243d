// ABOUTME: Post and author data models consumed by the ranking engine
// ABOUTME: Plain records supplied by external collaborators, never fetched here
package models

import "time"

// Post is a single social-media post under ranking consideration
type Post struct {
	ID           string    `json:"id"`
	AuthorID     string    `json:"author_id"`
	AuthorHandle string    `json:"author_handle,omitempty"`
	Text         string    `json:"text"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

// AuthorStats holds raw behavioral measurements for a post author
type AuthorStats struct {
	AuthorID    string    `json:"author_id"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	PostsPerDay float64   `json:"posts_per_day"`
	RecentPosts int       `json:"recent_posts"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FollowerRatio returns following/followers, the "reply hunger" signal.
// Undefined when the author has no followers; callers get 0 as the default.
func (s *AuthorStats) FollowerRatio() float64 {
	if s.Followers <= 0 {
		return 0
	}
	return float64(s.Following) / float64(s.Followers)
}

// RankedPost pairs a post with its composite engagement score for one
// ranking pass. Scores are a derived view, recomputed per pass, never cached.
type RankedPost struct {
	Post      Post    `json:"post"`
	Relevance int     `json:"relevance"`
	Score     float64 `json:"score"`
}
