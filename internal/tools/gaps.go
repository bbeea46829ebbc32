package tools

import (
	"context"

	"github.com/avillar/promptlens/internal/analyzer"
	"github.com/avillar/promptlens/internal/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// GapsTool handles the findClarityGaps MCP tool.
type GapsTool struct{}

// NewGapsTool creates a GapsTool.
func NewGapsTool() *GapsTool { return &GapsTool{} }

// GapsResponse is the findClarityGaps response envelope.
type GapsResponse struct {
	Success             bool               `json:"success"`
	Gaps                []analyzer.Finding `json:"gaps"`
	OverallClarityScore int                `json:"overall_clarity_score"`
}

// Definition returns the MCP tool definition for registration.
func (t *GapsTool) Definition() mcp.Tool {
	return mcp.NewTool("findClarityGaps",
		mcp.WithDescription(
			"Scan a prompt for clarity gaps: missing context, ambiguous requirements, "+
				"unclear outputs, and missing constraints. Returns categorized findings "+
				"with severity and suggestions, plus an overall 0-100 clarity score. "+
				"The score is a rough heuristic, not a calibrated metric.",
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The prompt text to analyze. Must be non-empty."),
		),
	)
}

// Handle processes the findClarityGaps tool call.
func (t *GapsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := textArg(req)
	if text == "" {
		return mcp.NewToolResultError("'text' is required — provide the prompt to analyze"), nil
	}

	report := analyzer.Analyze(text)
	return jsonResult(GapsResponse{
		Success:             true,
		Gaps:                report.Gaps,
		OverallClarityScore: report.OverallClarityScore,
	}, schema.ValidateGaps)
}
