package sessionstore

import (
	"context"
	"sync"

	"github.com/mayan-tools/mayan-comdirect-importer/pkg/comdirect"
)

// Memory is a process-local Store for tests and single-shot runs.
type Memory struct {
	mu    sync.Mutex
	state *comdirect.State
}

func NewMemory() *Memory {
	return &Memory{}
}

func (s *Memory) Load(_ context.Context) (*comdirect.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return nil, nil
	}

	state := *s.state
	return &state, nil
}

func (s *Memory) Save(_ context.Context, state comdirect.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = &state
	return nil
}
