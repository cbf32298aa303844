package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/artisio/marketplace-api/internal/core/domain"
)

type collectingService struct {
	mu     sync.Mutex
	events []domain.ViewEvent
	done   chan struct{}
	want   int
}

func (s *collectingService) Process(_ context.Context, event domain.ViewEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if len(s.events) == s.want {
		close(s.done)
	}
	return nil
}

func TestDispatcher_DeliversAllEvents(t *testing.T) {
	svc := &collectingService{done: make(chan struct{}), want: 10}
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < 10; i++ {
		d.Enqueue(domain.ViewEvent{
			Subject:   domain.ViewSubjectArtwork,
			SubjectID: "art_" + string(rune('a'+i%3)),
			ViewerKey: "viewer",
			Timestamp: time.Now(),
		})
	}

	select {
	case <-svc.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for events, got %d", len(svc.events))
	}
}

func TestDispatcher_ShardIsStablePerSubject(t *testing.T) {
	d := NewDispatcher(4, &collectingService{done: make(chan struct{})}, zerolog.Nop())

	first := d.shardIndex("art_1")
	for i := 0; i < 100; i++ {
		if d.shardIndex("art_1") != first {
			t.Fatalf("shard index not deterministic")
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &collectingService{done: make(chan struct{})}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
