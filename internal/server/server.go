// Package server wires the MCP components and creates the server instance.
//
// This is the composition root: it creates the tool handlers and
// registers them. No analysis logic lives here — only wiring.
package server

import (
	"github.com/avillar/promptlens/internal/tools"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with the three prompt
// analysis tools registered. Every tool is a pure function of its input
// text, so the server holds no state and needs no cleanup.
func New() *server.MCPServer {
	s := server.NewMCPServer(
		"promptlens",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	convertTool := tools.NewConvertTool()
	s.AddTool(convertTool.Definition(), convertTool.Handle)

	gapsTool := tools.NewGapsTool()
	s.AddTool(gapsTool.Definition(), gapsTool.Handle)

	refineTool := tools.NewRefineTool()
	s.AddTool(refineTool.Definition(), refineTool.Handle)

	return s
}

// serverInstructions returns the system instructions that tell the AI
// when to reach for each tool.
func serverInstructions() string {
	return `You have access to promptlens, a deterministic prompt-analysis server.

## Tools

- findClarityGaps: scan a prompt for missing context, ambiguous
  requirements, unclear outputs, and missing constraints. Returns
  categorized findings with severity plus a 0-100 clarity score.
  Use this first when the user asks "is this prompt clear?".
- convertPromptToJson: structure a free-form prompt into a fixed JSON
  record (task, intent, inputs, outputs, clarity_gaps). Use this when
  the user wants a machine-readable breakdown of a prompt.
- refinePrompt: rewrite a prompt to address its detected gaps. Returns
  the refined text plus a change log. Use this when the user asks to
  improve or tighten a prompt.

## Important

- All three tools are rule-based and deterministic: same text in, same
  result out. They make no model calls and keep no state.
- The clarity score is a rough heuristic, not a calibrated metric — use
  it to compare drafts of the same prompt, not across unrelated prompts.
- Pass the full prompt text in the "text" parameter. Empty text is
  rejected.`
}
