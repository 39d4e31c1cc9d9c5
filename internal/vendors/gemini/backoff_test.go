package gemini

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestBackoffDelay(t *testing.T) {
	b := NewBackoff(time.Second, false)
	want := []time.Duration{time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second, 16 * time.Second}
	for attempt, w := range want {
		if got := b.Delay(attempt); got != w {
			t.Errorf("attempt %d: got %v want %v", attempt, got, w)
		}
	}
	if got := b.Delay(-1); got != time.Second {
		t.Errorf("negative attempt should use base delay, got %v", got)
	}
}

func TestBackoffDelay_DoesNotOverflow(t *testing.T) {
	b := NewBackoff(time.Second, false)
	prev := time.Duration(0)
	for attempt := 0; attempt < 100; attempt++ {
		got := b.Delay(attempt)
		if got <= 0 || got < prev {
			t.Fatalf("attempt %d: delay %v after %v", attempt, got, prev)
		}
		prev = got
	}
	if got := b.Delay(40); got != maxDelay {
		t.Errorf("expected delay to be capped at %v, got %v", maxDelay, got)
	}
	if got := NewBackoff(0, false).Delay(10); got != 0 {
		t.Errorf("expected zero base to give zero delay, got %v", got)
	}
}

func TestBackoffWait_ReturnsOnCancel(t *testing.T) {
	b := NewBackoff(time.Hour, false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	done := make(chan error, 1)
	go func() { done <- b.Wait(ctx, 0) }()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for cancelled backoff")
	}
}

func TestBackoffWait_Sleeps(t *testing.T) {
	b := NewBackoff(time.Millisecond, false)
	start := time.Now()
	if err := b.Wait(context.Background(), 1); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 2*time.Millisecond {
		t.Errorf("expected to wait at least 2ms, waited %v", elapsed)
	}
}
