// Package llm holds the text-generation backends the coach talks to.
package llm

import (
	"context"
	"errors"
)

// Generator produces a single reply for a system prompt and a user message.
type Generator interface {
	Chat(ctx context.Context, system, userMessage string) (string, error)
}

// ErrEmptyResponse is returned when a backend answers without any text.
var ErrEmptyResponse = errors.New("empty response")
