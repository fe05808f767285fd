package store

import (
	"sync"

	"github.com/rojanmagar2001/primeprobe/internal/domain"
)

type Memory struct {
	mu sync.Mutex

	outcomes []domain.Outcome
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Record(o domain.Outcome) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.outcomes = append(m.outcomes, o)
}

// All returns a copy of the recorded outcomes in insertion order.
func (m *Memory) All() []domain.Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.Outcome, len(m.outcomes))
	copy(out, m.outcomes)
	return out
}

func (m *Memory) Summary() domain.Summary {
	return domain.Summarize(m.All())
}
