package tools

import (
	"context"

	"github.com/avillar/promptlens/internal/extractor"
	"github.com/avillar/promptlens/internal/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// ConvertTool handles the convertPromptToJson MCP tool.
type ConvertTool struct{}

// NewConvertTool creates a ConvertTool.
func NewConvertTool() *ConvertTool { return &ConvertTool{} }

// Definition returns the MCP tool definition for registration.
func (t *ConvertTool) Definition() mcp.Tool {
	return mcp.NewTool("convertPromptToJson",
		mcp.WithDescription(
			"Convert a free-form prompt into a fixed JSON structure: task, intent, "+
				"inputs (required/optional/constraints), outputs (primary/secondary/format), "+
				"and the clarity gaps detected in the text. Extraction is deterministic "+
				"and rule-based — the same text always yields the same record.",
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The prompt text to structure. Must be non-empty."),
		),
	)
}

// Handle processes the convertPromptToJson tool call.
func (t *ConvertTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := textArg(req)
	if text == "" {
		return mcp.NewToolResultError("'text' is required — provide the prompt to convert"), nil
	}
	return jsonResult(extractor.Convert(text), schema.ValidateConvert)
}
