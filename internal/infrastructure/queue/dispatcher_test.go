package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/personal-diary/diary-api/internal/core/domain"
)

type recordingAudit struct {
	mu     sync.Mutex
	events []domain.AuthEvent
}

func (r *recordingAudit) Record(_ context.Context, event domain.AuthEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *recordingAudit) snapshot() []domain.AuthEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuthEvent, len(r.events))
	copy(out, r.events)
	return out
}

func TestDispatcher_DeliversAllEvents(t *testing.T) {
	audit := &recordingAudit{}
	d := NewDispatcher(4, audit, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < 20; i++ {
		d.Enqueue(domain.AuthEvent{Email: "a@b.com", Kind: domain.AuthLoginFailed, Timestamp: time.Now()})
	}

	deadline := time.After(2 * time.Second)
	for len(audit.snapshot()) < 20 {
		select {
		case <-deadline:
			t.Fatalf("expected 20 events, got %d", len(audit.snapshot()))
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestDispatcher_PerEmailOrdering(t *testing.T) {
	audit := &recordingAudit{}
	d := NewDispatcher(4, audit, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	base := time.Now().UTC()
	for i := 0; i < 10; i++ {
		d.Enqueue(domain.AuthEvent{Email: "a@b.com", Kind: domain.AuthLoginFailed, Timestamp: base.Add(time.Duration(i) * time.Second)})
	}

	deadline := time.After(2 * time.Second)
	for len(audit.snapshot()) < 10 {
		select {
		case <-deadline:
			t.Fatalf("expected 10 events, got %d", len(audit.snapshot()))
		case <-time.After(10 * time.Millisecond):
		}
	}

	// Same email always lands on the same worker, so arrival order holds.
	events := audit.snapshot()
	for i := 1; i < len(events); i++ {
		if events[i].Timestamp.Before(events[i-1].Timestamp) {
			t.Fatalf("events out of order at %d: %v before %v", i, events[i].Timestamp, events[i-1].Timestamp)
		}
	}
}

func TestDispatcher_ShardIsStable(t *testing.T) {
	d := NewDispatcher(8, &recordingAudit{}, zerolog.Nop())
	first := d.shardIndex("a@b.com")
	for i := 0; i < 100; i++ {
		if d.shardIndex("a@b.com") != first {
			t.Fatalf("shard index not deterministic")
		}
	}
}
