package coach

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

type fakeGen struct {
	mu      sync.Mutex
	reply   string
	err     error
	prompts []string
	block   chan struct{}
}

func (g *fakeGen) Chat(ctx context.Context, system, user string) (string, error) {
	g.mu.Lock()
	g.prompts = append(g.prompts, user)
	block := g.block
	g.mu.Unlock()
	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return g.reply, g.err
}

func TestQuoteFallbacks(t *testing.T) {
	ctx := context.Background()
	req := QuoteRequest{PetName: "Coco", UrgentCount: 2}

	if got := New(nil, nil, 0).Quote(ctx, req); got != FallbackQuote {
		t.Fatalf("nil generator: %q", got)
	}
	if got := New(&fakeGen{err: errors.New("quota")}, nil, 0).Quote(ctx, req); got != FallbackQuote {
		t.Fatalf("failing generator: %q", got)
	}
	if got := New(&fakeGen{reply: "  \n"}, nil, 0).Quote(ctx, req); got != FallbackQuote {
		t.Fatalf("blank reply: %q", got)
	}
}

func TestQuotePromptAndCleanup(t *testing.T) {
	g := &fakeGen{reply: ` "You crushed it today, keep the streak alive!" `}
	got := New(g, nil, 0).Quote(context.Background(), QuoteRequest{PetName: "Coco", UrgentCount: 3, Happy: true})
	if got != "You crushed it today, keep the streak alive!" {
		t.Fatalf("Quote = %q", got)
	}
	p := g.prompts[0]
	for _, want := range []string{"named Coco", "Happy", "3 urgent tasks"} {
		if !strings.Contains(p, want) {
			t.Fatalf("prompt missing %q: %s", want, p)
		}
	}
}

func TestQuoteCappedAtTwentyWords(t *testing.T) {
	g := &fakeGen{reply: strings.Repeat("go ", 30)}
	got := New(g, nil, 0).Quote(context.Background(), QuoteRequest{PetName: "Coco"})
	if n := len(strings.Fields(got)); n != maxQuoteWords {
		t.Fatalf("quote has %d words", n)
	}
}

func TestSuggestions(t *testing.T) {
	ctx := context.Background()

	if got := New(&fakeGen{reply: "a;b"}, nil, 0).Suggestions(ctx, nil); len(got) != 0 {
		t.Fatalf("empty input: %v", got)
	}
	if got := New(&fakeGen{err: errors.New("down")}, nil, 0).Suggestions(ctx, []string{"x"}); got == nil || len(got) != 0 {
		t.Fatalf("failure should be an empty list: %#v", got)
	}

	g := &fakeGen{reply: " Buy milk ; ;Walk dog;Call mom; Extra "}
	titles := []string{"t1", "t2", "t3", "t4", "t5", "t6"}
	got := New(g, nil, 0).Suggestions(ctx, titles)
	want := []string{"Buy milk", "Walk dog", "Call mom"}
	if len(got) != len(want) {
		t.Fatalf("Suggestions = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Suggestions[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if strings.Contains(g.prompts[0], "t1") || !strings.Contains(g.prompts[0], "t2, t3, t4, t5, t6") {
		t.Fatalf("prompt should use the 5 most recent titles: %s", g.prompts[0])
	}
}

func TestQuoteTimeout(t *testing.T) {
	g := &fakeGen{reply: "late", block: make(chan struct{})}
	defer close(g.block)
	got := New(g, nil, 10*time.Millisecond).Quote(context.Background(), QuoteRequest{})
	if got != FallbackQuote {
		t.Fatalf("timed out quote = %q", got)
	}
}

func TestFeedDropsSupersededResults(t *testing.T) {
	slow := &fakeGen{reply: "old", block: make(chan struct{})}
	f := NewFeed(New(slow, nil, time.Minute))

	first := f.Request(context.Background(), QuoteRequest{})

	// Swap in a fast generator for the second request.
	f.coach = New(&fakeGen{reply: "new"}, nil, time.Minute)
	second := f.Request(context.Background(), QuoteRequest{})

	if q, ok := <-second; !ok || q != "new" {
		t.Fatalf("second = %q %v", q, ok)
	}
	close(slow.block)
	if q, ok := <-first; ok {
		t.Fatalf("superseded request delivered %q", q)
	}
	if got := f.Latest(); got != "new" {
		t.Fatalf("Latest = %q", got)
	}
}
