package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/efootball-data-service/internal/domain/players"
)

// StubProvider is a test double for providers.PlayerProvider.
type StubProvider struct {
	Summaries []players.Summary
	Detail    players.Detail
	Err       error
	Calls     atomic.Int32
	// Notify is closed on the first call.
	Notify chan struct{}

	mu       sync.Mutex
	LastName string
	LastID   string
}

// SearchPlayers returns configured summaries and error while tracking calls.
func (s *StubProvider) SearchPlayers(ctx context.Context, name string) ([]players.Summary, error) {
	_ = ctx
	s.track()
	s.mu.Lock()
	s.LastName = name
	s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Summaries, nil
}

// FetchPlayer returns the configured detail and error while tracking calls.
func (s *StubProvider) FetchPlayer(ctx context.Context, id string) (players.Detail, error) {
	_ = ctx
	s.track()
	s.mu.Lock()
	s.LastID = id
	s.mu.Unlock()
	if s.Err != nil {
		return players.Detail{}, s.Err
	}
	return s.Detail, nil
}

func (s *StubProvider) track() {
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
}
