// Package tutor is the ask-the-tutor capability: it turns an instruction
// plus session context into narration text via an LLM provider. Providers
// are safe to retry; a failed call never mutates session state.
package tutor

import "context"

// Context carries the session situation the tutor needs to narrate well.
type Context struct {
	Phase         string
	Subject       string
	Difficulty    string
	Lesson        string
	LessonTitle   string
	Step          string
	Stage         string
	TeachingNotes string
	Vocab         []string
}

// Request describes one tutor call.
type Request struct {
	// Instruction tells the tutor what to do next (e.g. "teach the
	// lesson vocabulary").
	Instruction string

	// Utterance is the learner's free-text input, when the call is a
	// response to one. Empty for system-driven narration.
	Utterance string

	Context Context

	// MaxTokens caps the narration length. 0 uses the provider default.
	MaxTokens int

	// Temperature controls variation. Range 0.0 - 1.0.
	Temperature float64
}

// Result holds the tutor's narration.
type Result struct {
	// Text is the narration to caption and speak.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Provider is the core tutor abstraction.
type Provider interface {
	// Call sends the instruction and context to the tutor and returns
	// narration text.
	Call(ctx context.Context, req Request) (*Result, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}
