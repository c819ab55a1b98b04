package poll

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestUntil_StopsOnDone(t *testing.T) {
	calls := 0
	err := Until(context.Background(), time.Millisecond, 10, func(ctx context.Context) (bool, error) {
		calls++
		return calls == 3, nil
	})
	if err != nil {
		t.Fatalf("Until error: %v", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestUntil_StopsOnError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := Until(context.Background(), time.Millisecond, 10, func(ctx context.Context) (bool, error) {
		calls++
		return false, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (no polling past a terminal state)", calls)
	}
}

func TestUntil_BudgetExhausted(t *testing.T) {
	calls := 0
	err := Until(context.Background(), time.Millisecond, 5, func(ctx context.Context) (bool, error) {
		calls++
		return false, nil
	})
	if !errors.Is(err, ErrBudgetExhausted) {
		t.Fatalf("err = %v, want ErrBudgetExhausted", err)
	}
	if calls != 5 {
		t.Errorf("calls = %d, want exactly 5", calls)
	}
}

func TestUntil_CancelledBeforeNextSleepElapses(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := Until(ctx, time.Hour, 60, func(ctx context.Context) (bool, error) {
		t.Fatal("fn must not run after cancellation")
		return false, nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if time.Since(start) > time.Second {
		t.Error("cancellation must short-circuit the sleep")
	}
}

func TestUntil_IntervalSpacing(t *testing.T) {
	const interval = 20 * time.Millisecond
	start := time.Now()
	err := Until(context.Background(), interval, 3, func(ctx context.Context) (bool, error) {
		return false, nil
	})
	if !errors.Is(err, ErrBudgetExhausted) {
		t.Fatalf("err = %v", err)
	}
	if elapsed := time.Since(start); elapsed < 3*interval {
		t.Errorf("elapsed = %v, want at least %v (no busy-waiting)", elapsed, 3*interval)
	}
}
