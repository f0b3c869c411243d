// ABOUTME: MCP tool definitions and registration for the resonate server
// ABOUTME: Defines JSON schemas for the ranking, scoring, and interest tools
package mcp

import (
	"github.com/harper/resonate/internal/core"
	"github.com/harper/resonate/internal/llm"
	"github.com/harper/resonate/internal/storage"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, store *storage.Storage, curator *core.Curator, openaiClient *llm.OpenAIClient) *Handlers {
	handlers := &Handlers{
		storage:      store,
		curator:      curator,
		openaiClient: openaiClient,
	}

	// 1. rank_posts - Rank candidate posts by engagement likelihood
	server.AddTool(mcp.Tool{
		Name:        "rank_posts",
		Description: "Rank candidate posts by predicted engagement likelihood. Combines topical relevance against the interest profile with behavioral author signals.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"posts": map[string]interface{}{
					"type":        "array",
					"description": "Candidate posts to rank",
					"items": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"id":            map[string]interface{}{"type": "string"},
							"author_id":     map[string]interface{}{"type": "string"},
							"author_handle": map[string]interface{}{"type": "string"},
							"text":          map[string]interface{}{"type": "string"},
						},
						"required": []string{"id", "text"},
					},
				},
				"limit": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of ranked posts to return (default: configured rank limit)",
				},
			},
			Required: []string{"posts"},
		},
	}, handlers.RankPosts)

	// 2. score_post - Relevance score for a single post text
	server.AddTool(mcp.Tool{
		Name:        "score_post",
		Description: "Score a single piece of post text against the interest profile. Returns a 0-100 relevance score and a human-readable interpretation.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Post text to score",
				},
			},
			Required: []string{"text"},
		},
	}, handlers.ScorePost)

	// 3. interpret_relevance - Map a raw 0-100 score to its label
	server.AddTool(mcp.Tool{
		Name:        "interpret_relevance",
		Description: "Map a 0-100 relevance score to its interpretation band (e.g. 'Highly relevant', 'Somewhat relevant').",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"score": map[string]interface{}{
					"type":        "number",
					"description": "Relevance score from 0 to 100",
				},
			},
			Required: []string{"score"},
		},
	}, handlers.InterpretRelevance)

	// 4. set_interests - Replace or extend the interest profile
	server.AddTool(mcp.Tool{
		Name:        "set_interests",
		Description: "Set the interest profile topics used for relevance scoring. Replaces the current topics unless append is true.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"interests": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Interest topics (e.g., 'Go programming', 'vector search')",
				},
				"handle": map[string]interface{}{
					"type":        "string",
					"description": "Optional social handle the profile belongs to",
				},
				"append": map[string]interface{}{
					"type":        "boolean",
					"description": "Add to existing topics instead of replacing them (default: false)",
				},
			},
			Required: []string{"interests"},
		},
	}, handlers.SetInterests)

	// 5. get_interests - Read the current interest profile
	server.AddTool(mcp.Tool{
		Name:        "get_interests",
		Description: "Get the current interest profile topics and when they were last updated.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.GetInterests)

	// 6. infer_interests - Derive interest topics from free text
	server.AddTool(mcp.Tool{
		Name:        "infer_interests",
		Description: "Infer interest topics from a free-form description (e.g. a bio or a sample of posts) and merge them into the profile.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Free-form text to extract interests from",
				},
			},
			Required: []string{"text"},
		},
	}, handlers.InferInterests)

	return handlers
}
