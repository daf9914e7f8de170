package lewis

import (
	"io"
	"log/slog"
	"testing"

	"go.uber.org/goleak"
)

// The worker pool must not leave goroutines behind.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSieve(t *testing.T, base int64, workers int) *Sieve {
	t.Helper()

	s, err := NewSieve(Config{Base: base, Workers: workers, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("NewSieve(%d) failed: %v", base, err)
	}
	return s
}
