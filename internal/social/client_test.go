// ABOUTME: Unit tests for the social-graph stats client
// ABOUTME: Uses httptest to verify decoding, retries, 404 handling, and auth
package social

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(baseURL string) *Client {
	c := NewClient(baseURL, "test-token")
	c.retryDelay = time.Millisecond
	return c
}

func TestAuthorStats_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/authors/alice/stats" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("missing bearer token, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"author_id": "alice",
			"followers_count": 100,
			"following_count": 250,
			"statuses_last_day": 4,
			"statuses_last_month": 90
		}`))
	}))
	defer srv.Close()

	stats, err := newTestClient(srv.URL).AuthorStats(context.Background(), "alice")
	if err != nil {
		t.Fatalf("AuthorStats returned error: %v", err)
	}
	if stats == nil {
		t.Fatal("expected stats, got nil")
	}

	if stats.Followers != 100 || stats.Following != 250 {
		t.Errorf("counts = %d/%d, want 100/250", stats.Followers, stats.Following)
	}
	if stats.RecentPosts != 4 {
		t.Errorf("RecentPosts = %d, want 4", stats.RecentPosts)
	}
	if math.Abs(stats.PostsPerDay-3.0) > 0.000001 {
		t.Errorf("PostsPerDay = %f, want 3.0 (90/30)", stats.PostsPerDay)
	}
	if math.Abs(stats.FollowerRatio()-2.5) > 0.000001 {
		t.Errorf("FollowerRatio = %f, want 2.5", stats.FollowerRatio())
	}
}

func TestAuthorStats_UnknownAuthor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	stats, err := newTestClient(srv.URL).AuthorStats(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("404 should not be an error: %v", err)
	}
	if stats != nil {
		t.Errorf("expected nil stats for unknown author, got %+v", stats)
	}
}

func TestAuthorStats_RetriesServerErrors(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"followers_count": 1, "following_count": 1, "statuses_last_day": 0, "statuses_last_month": 0}`))
	}))
	defer srv.Close()

	stats, err := newTestClient(srv.URL).AuthorStats(context.Background(), "flaky")
	if err != nil {
		t.Fatalf("expected retry to succeed: %v", err)
	}
	if stats == nil {
		t.Fatal("expected stats after retries")
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestAuthorStats_GivesUpAfterRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	c.maxRetries = 1

	if _, err := c.AuthorStats(context.Background(), "down"); err == nil {
		t.Error("expected error after exhausting retries")
	}
}

func TestAuthorStats_NoBaseURL(t *testing.T) {
	c := NewClient("", "")
	if _, err := c.AuthorStats(context.Background(), "alice"); err == nil {
		t.Error("expected error when base URL is not configured")
	}
}

func TestFollowerRatio_ZeroFollowers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"followers_count": 0, "following_count": 500, "statuses_last_day": 0, "statuses_last_month": 0}`))
	}))
	defer srv.Close()

	stats, err := newTestClient(srv.URL).AuthorStats(context.Background(), "lurker")
	if err != nil {
		t.Fatalf("AuthorStats returned error: %v", err)
	}
	// Ratio is undefined with zero followers; the default is 0
	if stats.FollowerRatio() != 0 {
		t.Errorf("FollowerRatio with zero followers = %f, want 0", stats.FollowerRatio())
	}
}
