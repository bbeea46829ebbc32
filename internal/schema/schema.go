// Package schema enforces the wire shape of the three tool responses.
//
// Each response envelope has a draft-07 JSON Schema compiled once at
// package init. The dispatch layer validates every serialized response
// before returning it; a violation means a programming error in the
// core, not bad caller input, and is surfaced as an internal fault.
package schema

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const convertResponseJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["success", "processing_time_ms"],
  "properties": {
    "success": { "type": "boolean" },
    "error": { "type": "string" },
    "processing_time_ms": { "type": "integer", "minimum": 0 },
    "data": {
      "type": "object",
      "required": ["task", "intent", "inputs", "outputs", "clarity_gaps"],
      "properties": {
        "task": { "type": "string" },
        "intent": { "type": "string" },
        "inputs": {
          "type": "object",
          "required": ["required", "optional", "constraints"],
          "properties": {
            "required": { "type": "array", "items": { "type": "string" } },
            "optional": { "type": "array", "items": { "type": "string" } },
            "constraints": { "type": "array", "items": { "type": "string" } }
          }
        },
        "outputs": {
          "type": "object",
          "required": ["primary", "secondary", "format"],
          "properties": {
            "primary": { "type": "string" },
            "secondary": { "type": "array", "items": { "type": "string" } },
            "format": { "type": "string" }
          }
        },
        "clarity_gaps": { "type": "array", "items": { "type": "string" } }
      }
    }
  }
}`

const gapsResponseJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["success", "gaps", "overall_clarity_score"],
  "properties": {
    "success": { "type": "boolean" },
    "gaps": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["category", "description", "suggestion", "severity"],
        "properties": {
          "category": {
            "type": "string",
            "enum": ["missing_context", "ambiguous_requirement", "unclear_output", "missing_constraints"]
          },
          "description": { "type": "string" },
          "suggestion": { "type": "string" },
          "severity": { "type": "string", "enum": ["low", "medium", "high"] }
        }
      }
    },
    "overall_clarity_score": { "type": "integer", "minimum": 0, "maximum": 100 }
  }
}`

const refineResponseJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["success", "original_prompt", "refined_prompt", "improvements"],
  "properties": {
    "success": { "type": "boolean" },
    "original_prompt": { "type": "string" },
    "refined_prompt": { "type": "string" },
    "improvements": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["type", "description", "before", "after"],
        "properties": {
          "type": {
            "type": "string",
            "enum": ["clarity", "specificity", "structure", "completeness"]
          },
          "description": { "type": "string" },
          "before": { "type": "string" },
          "after": { "type": "string" }
        }
      }
    }
  }
}`

var (
	convertSchema = mustCompile(convertResponseJSON)
	gapsSchema    = mustCompile(gapsResponseJSON)
	refineSchema  = mustCompile(refineResponseJSON)
)

func mustCompile(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("schema: invalid response schema: %v", err))
	}
	return s
}

// ValidateConvert checks a serialized convertPromptToJson response.
func ValidateConvert(doc []byte) error { return validate(convertSchema, doc) }

// ValidateGaps checks a serialized findClarityGaps response.
func ValidateGaps(doc []byte) error { return validate(gapsSchema, doc) }

// ValidateRefine checks a serialized refinePrompt response.
func ValidateRefine(doc []byte) error { return validate(refineSchema, doc) }

func validate(s *gojsonschema.Schema, doc []byte) error {
	res, err := s.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("validating response: %w", err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("response shape invalid: %s", strings.Join(msgs, "; "))
}
