package models

import "context"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Querier interface {
	Query(ctx context.Context) error
}

// Sender turns a question plus the prior turns into display text. Implementations
// never return an error, every failure is rendered as text.
type Sender interface {
	Send(ctx context.Context, query string, history []Turn) string
}

// Turn is a single entry of the conversation log. Role is forwarded to the model
// as-is.
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Source is a web page the model grounded its answer on.
type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// Answer is a successfully normalized model reply.
type Answer struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources,omitempty"`
}

// Generator asks a remote model for an answer. Setup must be called before
// Generate.
type Generator interface {
	Setup() error
	Generate(ctx context.Context, query string, history []Turn) (Answer, error)
}
