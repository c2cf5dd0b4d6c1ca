// Package coach asks a text generator for pet quotes and task suggestions.
// Every call is best-effort: failures are logged and replaced by fallbacks so
// callers never see an error.
package coach

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"petquest/internal/llm"
)

const (
	FallbackQuote = "Let's get to work!"

	maxQuoteWords      = 20
	maxSuggestionInput = 5
	maxSuggestions     = 3
)

type QuoteRequest struct {
	PetName     string
	UrgentCount int
	Happy       bool
}

type Coach struct {
	gen     llm.Generator
	log     *slog.Logger
	timeout time.Duration
}

// New returns a Coach. A nil generator makes every call return its fallback.
func New(gen llm.Generator, log *slog.Logger, timeout time.Duration) *Coach {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Coach{gen: gen, log: log, timeout: timeout}
}

// Enabled reports whether a generator is configured.
func (c *Coach) Enabled() bool { return c.gen != nil }

func quotePrompt(req QuoteRequest) string {
	status := "Sad/Stressed"
	if req.Happy {
		status = "Happy"
	}
	return fmt.Sprintf(`You are a virtual pet named %s.
Current status: %s.
The user has %d urgent tasks approaching deadline.

Give a short, punchy, 1-sentence motivational quote or reaction based on your status.
If sad, beg them to work. If happy, praise them.
Keep it under 20 words.`, req.PetName, status, req.UrgentCount)
}

// Quote returns a short line in the pet's voice, or FallbackQuote.
func (c *Coach) Quote(ctx context.Context, req QuoteRequest) string {
	if c.gen == nil {
		return FallbackQuote
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	text, err := c.gen.Chat(ctx, "", quotePrompt(req))
	if err != nil {
		c.log.WarnContext(ctx, "quote generation failed", "error", err)
		return FallbackQuote
	}
	q := cleanQuote(text)
	if q == "" {
		return FallbackQuote
	}
	return q
}

func cleanQuote(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "\"“”")
	words := strings.Fields(s)
	if len(words) > maxQuoteWords {
		words = words[:maxQuoteWords]
	}
	return strings.Join(words, " ")
}

func suggestionPrompt(titles []string) string {
	return fmt.Sprintf("Based on these tasks: %s. Suggest 3 new, related small actionable sub-tasks to help the user. "+
		"Return ONLY the 3 task titles separated by semi-colons.", strings.Join(titles, ", "))
}

// Suggestions proposes up to three task titles based on the most recent
// titles. It returns an empty slice when there is nothing to go on or the
// generator fails.
func (c *Coach) Suggestions(ctx context.Context, titles []string) []string {
	clean := make([]string, 0, len(titles))
	for _, t := range titles {
		if t = strings.TrimSpace(t); t != "" {
			clean = append(clean, t)
		}
	}
	if len(clean) == 0 || c.gen == nil {
		return []string{}
	}
	if len(clean) > maxSuggestionInput {
		clean = clean[len(clean)-maxSuggestionInput:]
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	text, err := c.gen.Chat(ctx, "", suggestionPrompt(clean))
	if err != nil {
		c.log.WarnContext(ctx, "suggestion generation failed", "error", err)
		return []string{}
	}
	return parseSuggestions(text)
}

func parseSuggestions(text string) []string {
	out := []string{}
	for _, part := range strings.Split(text, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
