// Package tools implements the MCP tool handlers for prompt analysis.
//
// Each tool is a struct with no dependencies beyond the pure analysis
// core, exposing Definition() for registration and Handle() compatible
// with mcp-go's CallToolRequest signature. One file per tool.
//
// The tool layer owns boundary validation: empty text is rejected here
// and never reaches the core. Serialized responses are checked against
// their JSON Schemas before being returned.
package tools

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// textArg extracts and trims the required "text" argument.
func textArg(req mcp.CallToolRequest) string {
	return strings.TrimSpace(req.GetString("text", ""))
}

// jsonResult marshals v, validates the bytes with check, and wraps them
// as a text result. A validation failure is an internal fault — the
// core produced a shape the contract forbids.
func jsonResult(v any, check func([]byte) error) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding response: %w", err)
	}
	if err := check(data); err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(data)), nil
}
