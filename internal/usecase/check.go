package usecase

import (
	"context"

	"github.com/rojanmagar2001/primeprobe/internal/check"
	"github.com/rojanmagar2001/primeprobe/internal/domain"
	"github.com/rojanmagar2001/primeprobe/internal/ports"
)

type PrimeCheckerService struct {
	chk     *check.Checker
	limiter ports.Limiter
}

func NewPrimeChecker(chk *check.Checker, limiter ports.Limiter) *PrimeCheckerService {
	return &PrimeCheckerService{
		chk:     chk,
		limiter: limiter,
	}
}

// Check waits for the limiter and then probes item. A limiter error
// (only cancellation) is reported as a transport failure for the item.
func (s *PrimeCheckerService) Check(ctx context.Context, item domain.Item) domain.Outcome {
	// Limiting happens before network call
	if err := s.limiter.Take(ctx, s.chk.BaseURL); err != nil {
		return domain.TransportError(item, err, 0)
	}
	return s.chk.Check(ctx, item)
}
