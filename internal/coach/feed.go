package coach

import (
	"context"
	"sync"
)

// Feed runs quote requests in the background. Only the newest request's
// result is delivered; older ones are dropped when they finish.
type Feed struct {
	coach *Coach

	mu     sync.Mutex
	gen    uint64
	latest string
}

func NewFeed(c *Coach) *Feed {
	return &Feed{coach: c, latest: FallbackQuote}
}

// Request starts a quote request. The returned channel yields the quote and
// closes, or closes empty if a newer request superseded this one.
func (f *Feed) Request(ctx context.Context, req QuoteRequest) <-chan string {
	f.mu.Lock()
	f.gen++
	gen := f.gen
	c := f.coach
	f.mu.Unlock()

	out := make(chan string, 1)
	go func() {
		defer close(out)
		q := c.Quote(ctx, req)

		f.mu.Lock()
		defer f.mu.Unlock()
		if gen != f.gen {
			return
		}
		f.latest = q
		out <- q
	}()
	return out
}

// Latest is the most recent delivered quote, FallbackQuote before any.
func (f *Feed) Latest() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.latest
}
