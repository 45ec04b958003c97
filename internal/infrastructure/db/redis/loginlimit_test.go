package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T, maxAttempts int, window time.Duration) (*LoginLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewLoginLimiter(client, maxAttempts, window), mr
}

func TestLoginLimiter_AllowsUnderBudget(t *testing.T) {
	limiter, _ := newTestLimiter(t, 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := limiter.Allow(ctx, "a@b.com")
		if err != nil {
			t.Fatalf("allow failed: %v", err)
		}
		if !ok {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
		if err := limiter.RecordFailure(ctx, "a@b.com"); err != nil {
			t.Fatalf("record failed: %v", err)
		}
	}
}

func TestLoginLimiter_BlocksAtBudget(t *testing.T) {
	limiter, _ := newTestLimiter(t, 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := limiter.RecordFailure(ctx, "a@b.com"); err != nil {
			t.Fatalf("record failed: %v", err)
		}
	}

	ok, err := limiter.Allow(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("allow failed: %v", err)
	}
	if ok {
		t.Fatalf("expected block after 3 failures")
	}

	// Other emails are unaffected.
	ok, err = limiter.Allow(ctx, "other@b.com")
	if err != nil || !ok {
		t.Fatalf("unrelated email should be allowed: ok=%v err=%v", ok, err)
	}
}

func TestLoginLimiter_WindowExpires(t *testing.T) {
	limiter, mr := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	if err := limiter.RecordFailure(ctx, "a@b.com"); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if ok, _ := limiter.Allow(ctx, "a@b.com"); ok {
		t.Fatalf("expected block inside window")
	}

	mr.FastForward(2 * time.Minute)

	ok, err := limiter.Allow(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("allow failed: %v", err)
	}
	if !ok {
		t.Fatalf("expected budget reset after window expiry")
	}
}
