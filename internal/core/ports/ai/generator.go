// Package ai defines the driven port for the external text-generation
// service. The application depends only on this prompt-in/text-out contract,
// not on any provider-specific transport.
package ai

import "context"

// Schema type constants, matching the structured-output vocabulary of the
// generation API.
const (
	TypeObject = "OBJECT"
	TypeString = "STRING"
	TypeNumber = "NUMBER"
)

// Schema describes the expected shape of a structured JSON response.
type Schema struct {
	Type       string             `json:"type"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Items      *Schema            `json:"items,omitempty"`
	Required   []string           `json:"required,omitempty"`
}

// GenerateRequest is a single prompt for the text-generation service.
// ResponseMIMEType and ResponseSchema are optional; when set, the service is
// asked for output conforming to the schema.
type GenerateRequest struct {
	Model            string
	Prompt           string
	ResponseMIMEType string
	ResponseSchema   *Schema
}

// TextGenerator sends a prompt and returns the generated text. An empty
// string with a nil error is a valid outcome (the service answered with an
// empty body); callers must treat it separately from failure.
type TextGenerator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}
