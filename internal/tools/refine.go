package tools

import (
	"context"

	"github.com/avillar/promptlens/internal/extractor"
	"github.com/avillar/promptlens/internal/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// RefineTool handles the refinePrompt MCP tool.
type RefineTool struct{}

// NewRefineTool creates a RefineTool.
func NewRefineTool() *RefineTool { return &RefineTool{} }

// RefineResponse is the refinePrompt response envelope.
type RefineResponse struct {
	Success        bool                    `json:"success"`
	OriginalPrompt string                  `json:"original_prompt"`
	RefinedPrompt  string                  `json:"refined_prompt"`
	Improvements   []extractor.Improvement `json:"improvements"`
}

// Definition returns the MCP tool definition for registration.
func (t *RefineTool) Definition() mcp.Tool {
	return mcp.NewTool("refinePrompt",
		mcp.WithDescription(
			"Rewrite a prompt to address its clarity gaps. Applies up to four fixed "+
				"transformations (add context, replace vague adjectives, state output "+
				"requirements, state constraints), each gated on the matching gap "+
				"category being present. Returns the refined prompt plus a log of the "+
				"changes applied, with before/after text per step.",
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The prompt text to refine. Must be non-empty."),
		),
	)
}

// Handle processes the refinePrompt tool call.
func (t *RefineTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := textArg(req)
	if text == "" {
		return mcp.NewToolResultError("'text' is required — provide the prompt to refine"), nil
	}

	res := extractor.Refine(text)
	return jsonResult(RefineResponse{
		Success:        true,
		OriginalPrompt: res.OriginalPrompt,
		RefinedPrompt:  res.RefinedPrompt,
		Improvements:   res.Improvements,
	}, schema.ValidateRefine)
}
