package ports

import "github.com/rojanmagar2001/primeprobe/internal/domain"

// Store keeps the outcomes of one run in the order they were produced.
type Store interface {
	Record(o domain.Outcome)
	All() []domain.Outcome
	Summary() domain.Summary
}
