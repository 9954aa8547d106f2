// Package leaktest runs battles side by side and checks they leave no goroutines behind.
package leaktest

import (
	"context"
	"runtime"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"
)

// settleTimeout bounds how long Check waits for finished goroutines to exit
const settleTimeout = 500 * time.Millisecond

// GoroutineChecker records the goroutine count at creation
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker creates a checker and records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check fails the test when more than tolerance goroutines are still running
// once the count has had settleTimeout to come back down
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(settleTimeout)
	after := runtime.NumGoroutine()
	for after-g.before > tolerance && time.Now().Before(deadline) {
		runtime.Gosched()
		time.Sleep(10 * time.Millisecond)
		after = runtime.NumGoroutine()
	}

	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// Parallel runs n battles concurrently and returns the first error.
// The context passed to each battle is cancelled as soon as one fails.
func Parallel(ctx context.Context, n int, battle func(ctx context.Context, i int) error) error {
	g, ctx := errgroup.WithContext(ctx)
	for i := range n {
		g.Go(func() error {
			return battle(ctx, i)
		})
	}
	return g.Wait()
}

// CheckParallel runs Parallel and fails the test on an error or a leaked goroutine
func CheckParallel(t *testing.T, n int, battle func(ctx context.Context, i int) error) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	if err := Parallel(context.Background(), n, battle); err != nil {
		t.Errorf("parallel battle failed: %v", err)
	}
	checker.Check(0)
}
