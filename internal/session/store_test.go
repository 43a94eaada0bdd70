package session

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/event-registration/internal/model"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore(time.Minute)

	s, err := st.Create(ctx)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if s.ID == "" || s.State != model.Gallery() {
		t.Fatalf("unexpected new session: %+v", s)
	}

	s.State = model.ViewState{Screen: model.ScreenForm, Event: "Robo War"}
	if err := st.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := st.Get(ctx, s.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.State != s.State {
		t.Fatalf("state = %+v, want %+v", got.State, s.State)
	}

	// Get hands out copies.
	got.State = model.Gallery()
	again, _ := st.Get(ctx, s.ID)
	if again.State.Screen != model.ScreenForm {
		t.Fatalf("stored session mutated through a copy")
	}
}

func TestMemoryStoreMissingAndExpired(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore(time.Minute)
	if _, err := st.Get(ctx, "nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	now := time.Now()
	st.now = func() time.Time { return now }
	s, _ := st.Create(ctx)
	st.now = func() time.Time { return now.Add(2 * time.Minute) }
	if _, err := st.Get(ctx, s.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected expired session, got %v", err)
	}
}

func TestMemoryStoreDropsAbandonedSessions(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore(time.Minute)
	now := time.Now()
	st.now = func() time.Time { return now }

	for i := 0; i < 1000; i++ {
		if _, err := st.Create(ctx); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}
	if n := st.Len(); n != 1000 {
		t.Fatalf("len = %d, want 1000", n)
	}

	st.now = func() time.Time { return now.Add(time.Hour) }
	fresh, err := st.Create(ctx)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if n := st.Len(); n != 1 {
		t.Fatalf("len after expiry = %d, want 1", n)
	}
	if _, err := st.Get(ctx, fresh.ID); err != nil {
		t.Fatalf("fresh session lost: %v", err)
	}
}

func TestRedisStoreRoundTrip(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	defer rdb.Close()

	st := NewRedisStore(rdb, "test-session", time.Minute)
	s, err := st.Create(ctx)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer rdb.Del(ctx, st.key(s.ID))

	s.State = model.ViewState{Screen: model.ScreenInfo, Event: "Tech Quizathon"}
	if err := st.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := st.Get(ctx, s.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.State != s.State {
		t.Fatalf("state = %+v, want %+v", got.State, s.State)
	}
	if _, err := st.Get(ctx, "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
