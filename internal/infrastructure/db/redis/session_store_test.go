package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/winner-security/shift-scheduler/internal/core/domain"
)

func newTestStore(t *testing.T) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionStore(client), mr
}

func testSession() *domain.Session {
	created := time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)
	return &domain.Session{
		ID:        "s1",
		UserID:    "w1",
		Email:     "marko@winner.local",
		CreatedAt: created,
		ExpiresAt: created.Add(time.Hour),
	}
}

func TestSessionStore_CreateAndGet(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()
	want := testSession()

	if err := store.Create(ctx, want, time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mr.HGet("session:s1", "user_id"); got != "w1" {
		t.Errorf("expected user_id field w1, got %q", got)
	}
	if ttl := mr.TTL("session:s1"); ttl != time.Hour {
		t.Errorf("expected TTL 1h, got %v", ttl)
	}

	got, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != want.ID || got.UserID != want.UserID || got.Email != want.Email {
		t.Errorf("expected %+v, got %+v", want, got)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) || !got.ExpiresAt.Equal(want.ExpiresAt) {
		t.Errorf("expected times %v/%v, got %v/%v", want.CreatedAt, want.ExpiresAt, got.CreatedAt, got.ExpiresAt)
	}
}

func TestSessionStore_GetAfterExpiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	if err := store.Create(ctx, testSession(), time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mr.FastForward(time.Hour + time.Second)

	if _, err := store.Get(ctx, "s1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionStore_GetMissing(t *testing.T) {
	store, _ := newTestStore(t)

	if _, err := store.Get(context.Background(), "nope"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionStore_Delete(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	if err := store.Create(ctx, testSession(), time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mr.Exists("session:s1") {
		t.Error("expected key to be removed")
	}
	if _, err := store.Get(ctx, "s1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}

	// Deleting again is a no-op.
	if err := store.Delete(ctx, "s1"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSessionStore_StoreDown(t *testing.T) {
	store, mr := newTestStore(t)
	mr.Close()

	err := store.Create(context.Background(), testSession(), time.Hour)
	if err == nil {
		t.Fatal("expected error when redis is unreachable")
	}
	if errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("unreachable store must not read as a missing session: %v", err)
	}
}
