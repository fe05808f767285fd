package limiter

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/rojanmagar2001/primeprobe/internal/ports"
)

// tokenBucket is a simple rate limiter using a buffered channel.
// It starts full so the first requests are not delayed.
type tokenBucket struct {
	ch   chan struct{}
	stop chan struct{}
}

func newTokenBucket(rate int) *tokenBucket {
	tb := &tokenBucket{
		ch:   make(chan struct{}, rate),
		stop: make(chan struct{}),
	}
	for i := 0; i < rate; i++ {
		tb.ch <- struct{}{}
	}

	interval := time.Second / time.Duration(rate)
	if interval < time.Microsecond {
		interval = time.Microsecond
	}

	// Refill one token every 1/rate seconds
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-tb.stop:
				return
			case <-ticker.C:
				select {
				case tb.ch <- struct{}{}:
				default:
					// bucket full
				}
			}
		}
	}()

	return tb
}

func (t *tokenBucket) Take(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.ch:
		return nil
	}
}

// PerHost keeps one bucket per target host.
type PerHost struct {
	mu     sync.Mutex
	rate   int
	host   map[string]*tokenBucket
	closed bool
}

// New returns a limiter allowing rate requests per second per host.
// rate <= 0 disables pacing.
func New(rate int) ports.Limiter {
	if rate <= 0 {
		return Unlimited{}
	}
	return &PerHost{
		rate: rate,
		host: make(map[string]*tokenBucket),
	}
}

func (h *PerHost) Take(ctx context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil // invalid URL already handled elsewhere
	}
	host := u.Host
	if host == "" {
		return nil
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	tb, ok := h.host[host]
	if !ok {
		tb = newTokenBucket(h.rate)
		h.host[host] = tb
	}
	h.mu.Unlock()

	return tb.Take(ctx)
}

// Close stops the refill goroutines. Take never blocks afterwards.
func (h *PerHost) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true
	for _, tb := range h.host {
		close(tb.stop)
	}
	return nil
}

// Unlimited never blocks.
type Unlimited struct{}

func (Unlimited) Take(ctx context.Context, _ string) error { return ctx.Err() }

func (Unlimited) Close() error { return nil }
