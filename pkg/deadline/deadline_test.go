package deadline

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRun_ReturnsValueBeforeDeadline(t *testing.T) {
	got, err := Run(context.Background(), time.Second, func(ctx context.Context) (int, error) {
		return 42, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Errorf("got %d, want 42", got)
	}
}

func TestRun_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Run(context.Background(), time.Second, func(ctx context.Context) (string, error) {
		return "", boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}

func TestRun_TimesOut(t *testing.T) {
	start := time.Now()
	_, err := Run(context.Background(), 50*time.Millisecond, func(ctx context.Context) (int, error) {
		time.Sleep(2 * time.Second)
		return 1, nil
	})
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("err = %v, want ErrTimeout", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Run blocked for %s, should return at the deadline", elapsed)
	}
}

func TestRun_CancelsWorkContext(t *testing.T) {
	cancelled := make(chan struct{})
	_, err := Run(context.Background(), 20*time.Millisecond, func(ctx context.Context) (int, error) {
		<-ctx.Done()
		close(cancelled)
		return 0, ctx.Err()
	})
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("err = %v, want ErrTimeout", err)
	}
	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("work context was not cancelled")
	}
}

func TestRun_ParentCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, time.Second, func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if errors.Is(err, ErrTimeout) {
		t.Error("parent cancellation should not be reported as a timeout")
	}
}

func TestTimeoutError_Message(t *testing.T) {
	err := &TimeoutError{After: 20 * time.Second}
	if got, want := err.Error(), "operation exceeded 20 seconds"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
