package ports

import "context"

// Limiter paces outgoing requests. Take blocks until a request to rawURL may go out.
type Limiter interface {
	Take(ctx context.Context, rawURL string) error
}
