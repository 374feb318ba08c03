package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWithExponentialBackoff_FirstAttemptSucceeds(t *testing.T) {
	t.Parallel()
	attempts := 0
	err := WithExponentialBackoff(context.Background(), func() error {
		attempts++
		return nil
	})

	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	if attempts != 1 {
		t.Errorf("Expected 1 attempt, got: %d", attempts)
	}
}

func TestWithExponentialBackoff_SucceedsOnLastAttempt(t *testing.T) {
	t.Parallel()
	attempts := 0
	err := WithExponentialBackoff(context.Background(), func() error {
		attempts++
		if attempts < 5 {
			return errors.New("rate limited")
		}
		return nil
	}, WithMaxAttempts(5), WithInitialDelay(time.Millisecond))

	if err != nil {
		t.Errorf("Expected success on 5th attempt, got: %v", err)
	}
	if attempts != 5 {
		t.Errorf("Expected 5 attempts, got: %d", attempts)
	}
}

func TestWithExponentialBackoff_Exhausted(t *testing.T) {
	t.Parallel()
	attempts := 0
	cause := errors.New("persistent error")
	err := WithExponentialBackoff(context.Background(), func() error {
		attempts++
		return cause
	}, WithMaxAttempts(5), WithInitialDelay(time.Millisecond))

	if attempts != 5 {
		t.Fatalf("Expected 5 attempts, got: %d", attempts)
	}

	var exhausted *ExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("Expected ExhaustedError, got: %v", err)
	}
	if exhausted.Attempts != 5 {
		t.Errorf("Expected Attempts=5, got: %d", exhausted.Attempts)
	}
	if !errors.Is(err, cause) {
		t.Error("Expected last error to be wrapped")
	}
}

func TestWithExponentialBackoff_OnRetry(t *testing.T) {
	t.Parallel()
	var seen []int
	_ = WithExponentialBackoff(context.Background(), func() error {
		return errors.New("boom")
	},
		WithMaxAttempts(3),
		WithInitialDelay(time.Millisecond),
		WithOnRetry(func(attempt int, _ error) {
			seen = append(seen, attempt)
		}))

	// No hook after the final attempt: nothing is retried past it.
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Errorf("Expected retry hook for attempts [1 2], got: %v", seen)
	}
}

func TestWithExponentialBackoff_ContextCancellation(t *testing.T) {
	t.Parallel()
	attempts := 0
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WithExponentialBackoff(ctx, func() error {
		attempts++
		return errors.New("error")
	}, WithInitialDelay(10*time.Millisecond))

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled error, got: %v", err)
	}
	if attempts != 1 {
		t.Errorf("Expected 1 attempt before context check, got: %d", attempts)
	}
}

func TestWithExponentialBackoff_FatalError(t *testing.T) {
	t.Parallel()
	attempts := 0
	err := WithExponentialBackoff(context.Background(), func() error {
		attempts++
		return Fatal(errors.New("fatal error"))
	}, WithInitialDelay(time.Millisecond))

	if !IsFatal(err) {
		t.Errorf("Expected fatal error, got: %v", err)
	}
	if attempts != 1 {
		t.Errorf("Expected 1 attempt (no retries for fatal error), got: %d", attempts)
	}
}

func TestWithExponentialBackoff_DelayGrows(t *testing.T) {
	t.Parallel()
	start := time.Now()
	_ = WithExponentialBackoff(context.Background(), func() error {
		return errors.New("error")
	}, WithMaxAttempts(4), WithInitialDelay(10*time.Millisecond))

	// 10ms + 20ms + 40ms between four attempts.
	if elapsed := time.Since(start); elapsed < 70*time.Millisecond {
		t.Errorf("Expected at least 70ms of backoff, got: %v", elapsed)
	}
}

func TestWithMaxAttempts(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   int
		want int
	}{
		{in: 5, want: 5},
		{in: 1, want: 1},
		{in: 0, want: 1},
		{in: -3, want: 1},
	}

	for _, tt := range tests {
		cfg := &Config{}
		WithMaxAttempts(tt.in)(cfg)
		if got := cfg.Attempts(); got != tt.want {
			t.Errorf("WithMaxAttempts(%d): Attempts() = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFatal(t *testing.T) {
	t.Parallel()
	if Fatal(nil) != nil {
		t.Error("Expected Fatal(nil) to be nil")
	}

	sentinel := errors.New("sentinel")
	err := Fatal(sentinel)
	if !IsFatal(err) {
		t.Error("Expected error to be fatal")
	}
	if !errors.Is(err, sentinel) {
		t.Error("errors.Is should find sentinel through FatalError")
	}
	if IsFatal(sentinel) {
		t.Error("Plain error must not be fatal")
	}
}
