package ports

import "github.com/rojanmagar2001/primeprobe/internal/domain"

// Reporter renders one report block per outcome, then an optional summary.
type Reporter interface {
	Report(o domain.Outcome) error
	Summary(s domain.Summary) error
}
