package server

import (
	"strings"
	"testing"
)

func TestNew_ReturnsConfiguredServer(t *testing.T) {
	s := New()
	if s == nil {
		t.Fatal("New() returned nil")
	}
}

func TestServerInstructions_NameAllTools(t *testing.T) {
	instructions := serverInstructions()
	for _, name := range []string{"convertPromptToJson", "findClarityGaps", "refinePrompt"} {
		if !strings.Contains(instructions, name) {
			t.Errorf("instructions do not mention %s", name)
		}
	}
}
