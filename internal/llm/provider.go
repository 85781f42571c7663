// Package llm implements the optional drafting step: an assembled prompt
// package is handed to a language model, which drafts the objection
// responses. Generation itself never depends on this package.
package llm

import (
	"context"
	"fmt"
)

// Provider is one drafting backend.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Draft generates objection responses from a prompt package.
	Draft(ctx context.Context, req DraftRequest) (*DraftResponse, error)

	// IsAvailable checks that the provider is configured and reachable.
	IsAvailable(ctx context.Context) bool
}

// DraftRequest carries the input for one drafting call.
type DraftRequest struct {
	// PackageMD is the full assembled prompt package; its drafting
	// instructions and approved templates are the entire specification the
	// model works from.
	PackageMD string

	// Model overrides the configured model name when set.
	Model string

	// MaxTokens limits the response length.
	MaxTokens int
}

// DraftResponse is the drafting output.
type DraftResponse struct {
	Draft      string
	Model      string
	TokensUsed int
}

// Config holds provider configuration.
type Config struct {
	Provider  string // "openai", "ollama", "" (disabled)
	Model     string
	APIKey    string
	BaseURL   string
	Timeout   int // seconds
	MaxTokens int
}

// DefaultConfig returns sensible defaults with drafting disabled.
func DefaultConfig() Config {
	return Config{
		Provider:  "",
		Timeout:   60,
		MaxTokens: 4000,
	}
}

// systemPrompt pins the model to the package contents. The package already
// carries the structure, templates, and per-item objections; the model's
// only job is to follow them.
const systemPrompt = "You are a litigation drafting assistant. Draft discovery responses " +
	"exactly as instructed by the prompt package you are given: follow its STRUCTURE block " +
	"for every response, use only the approved objection templates it contains, and never " +
	"invent objection grounds that are not marked for the item."

// BuildPrompt wraps a prompt package for the drafting call.
func BuildPrompt(packageMD string) string {
	return fmt.Sprintf("Draft the responses for every item in the following prompt package.\n\n%s", packageMD)
}
