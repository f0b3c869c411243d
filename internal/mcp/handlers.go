// ABOUTME: MCP tool handler implementations for the resonate server
// ABOUTME: Wraps the Curator and interest profile storage behind MCP tools
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/harper/resonate/internal/core"
	"github.com/harper/resonate/internal/llm"
	"github.com/harper/resonate/internal/models"
	"github.com/harper/resonate/internal/relevance"
	"github.com/harper/resonate/internal/storage"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	storage      *storage.Storage
	curator      *core.Curator
	openaiClient *llm.OpenAIClient // For interest inference
}

// RankPosts handles the rank_posts tool
func (h *Handlers) RankPosts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]any)
	if !ok {
		return mcp.NewToolResultError("invalid arguments"), nil
	}

	postsRaw, exists := args["posts"]
	if !exists {
		return mcp.NewToolResultError("posts argument is required and must be an array"), nil
	}

	// Round-trip through JSON to decode the loosely typed argument array
	postsJSON, err := json.Marshal(postsRaw)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid posts array: %v", err)), nil
	}
	var posts []models.Post
	if err := json.Unmarshal(postsJSON, &posts); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid posts array: %v", err)), nil
	}

	for i, post := range posts {
		if post.ID == "" {
			return mcp.NewToolResultError(fmt.Sprintf("post at index %d is missing an id", i)), nil
		}
	}

	ranked, err := h.curator.RankPosts(ctx, posts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("ranking failed: %v", err)), nil
	}

	limit := request.GetInt("limit", 0)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	results := make([]map[string]interface{}, 0, len(ranked))
	for _, rp := range ranked {
		results = append(results, map[string]interface{}{
			"id":             rp.Post.ID,
			"author_id":      rp.Post.AuthorID,
			"author_handle":  rp.Post.AuthorHandle,
			"text":           rp.Post.Text,
			"relevance":      rp.Relevance,
			"interpretation": relevance.Interpret(rp.Relevance),
			"score":          rp.Score,
		})
	}

	response := map[string]interface{}{
		"ranked": results,
		"total":  len(results),
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// ScorePost handles the score_post tool
func (h *Handlers) ScorePost(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}

	score, label, err := h.curator.ScorePost(text)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}

	response := map[string]interface{}{
		"score":          score,
		"interpretation": label,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// InterpretRelevance handles the interpret_relevance tool
func (h *Handlers) InterpretRelevance(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]any)
	if !ok {
		return mcp.NewToolResultError("invalid arguments"), nil
	}
	scoreRaw, exists := args["score"]
	if !exists {
		return mcp.NewToolResultError("score argument is required and must be a number"), nil
	}
	scoreFloat, ok := scoreRaw.(float64)
	if !ok {
		return mcp.NewToolResultError("score argument is required and must be a number"), nil
	}

	score := int(scoreFloat)
	response := map[string]interface{}{
		"score":          score,
		"interpretation": relevance.Interpret(score),
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// SetInterests handles the set_interests tool
func (h *Handlers) SetInterests(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]any)
	if !ok {
		return mcp.NewToolResultError("invalid arguments"), nil
	}
	interestsRaw, exists := args["interests"]
	if !exists {
		return mcp.NewToolResultError("interests argument is required and must be an array"), nil
	}
	interestsArr, ok := interestsRaw.([]interface{})
	if !ok {
		return mcp.NewToolResultError("interests argument is required and must be an array"), nil
	}

	interests := make([]string, 0, len(interestsArr))
	for _, item := range interestsArr {
		if s, ok := item.(string); ok && s != "" {
			interests = append(interests, s)
		}
	}
	if len(interests) == 0 {
		return mcp.NewToolResultError("interests must contain at least one non-empty string"), nil
	}

	appendMode := request.GetBool("append", false)

	profile, err := h.storage.GetInterestProfile()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load profile: %v", err)), nil
	}
	if profile == nil {
		profile = &models.InterestProfile{}
	}

	if appendMode {
		for _, interest := range interests {
			profile.AddInterest(interest)
		}
	} else {
		profile.Interests = interests
	}
	if handle := request.GetString("handle", ""); handle != "" {
		profile.Handle = handle
	}

	if err := h.storage.SaveInterestProfile(profile); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to save profile: %v", err)), nil
	}

	return h.profileResult(profile)
}

// GetInterests handles the get_interests tool
func (h *Handlers) GetInterests(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profile, err := h.storage.GetInterestProfile()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load profile: %v", err)), nil
	}
	if profile == nil {
		profile = &models.InterestProfile{Interests: []string{}}
	}

	return h.profileResult(profile)
}

// InferInterests handles the infer_interests tool
func (h *Handlers) InferInterests(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}
	if h.openaiClient == nil {
		return mcp.NewToolResultError("interest inference requires an OpenAI API key"), nil
	}

	topics, err := h.openaiClient.ExtractInterests(text)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("interest extraction failed: %v", err)), nil
	}
	if len(topics) == 0 {
		return mcp.NewToolResultError("no interests could be extracted from the text"), nil
	}

	profile, err := h.storage.GetInterestProfile()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load profile: %v", err)), nil
	}
	if profile == nil {
		profile = &models.InterestProfile{}
	}
	for _, topic := range topics {
		profile.AddInterest(topic)
	}

	if err := h.storage.SaveInterestProfile(profile); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to save profile: %v", err)), nil
	}

	log.Printf("Inferred %d interest topics", len(topics))
	return h.profileResult(profile)
}

// profileResult builds the shared interest-profile response payload
func (h *Handlers) profileResult(profile *models.InterestProfile) (*mcp.CallToolResult, error) {
	response := map[string]interface{}{
		"profile": map[string]interface{}{
			"handle":       profile.Handle,
			"interests":    profile.Interests,
			"last_updated": profile.LastUpdated.Format(time.RFC3339),
		},
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}
