// Package probe runs startup checks against the external dependencies a
// resolver needs: the LLM provider, the map APIs, the database.
package probe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Per-check timeout so one hanging dependency does not stall startup.
const checkTimeout = 5 * time.Second

// Check is one startup verification.
type Check struct {
	Name     string
	Run      func(ctx context.Context) error
	Critical bool // a critical failure blocks startup
}

// Result is the outcome of one check.
type Result struct {
	Check    Check
	Err      error
	Duration time.Duration
}

// RunAll executes the checks sequentially, each under its own timeout.
func RunAll(ctx context.Context, checks []Check) []Result {
	results := make([]Result, len(checks))
	for i, c := range checks {
		start := time.Now()
		cctx, cancel := context.WithTimeout(ctx, checkTimeout)
		err := c.Run(cctx)
		cancel()
		results[i] = Result{Check: c, Err: err, Duration: time.Since(start)}
	}
	return results
}

// Evaluate logs each result and returns the joined errors of failed critical
// checks. Non-critical failures are logged and tolerated; the resolver
// degrades instead of refusing to start.
func Evaluate(results []Result) error {
	var critical []error

	for _, r := range results {
		status := "PASS"
		if r.Err != nil {
			status = "FAIL"
		}
		msg := fmt.Sprintf("[%s] %-20s (%v)", status, r.Check.Name, r.Duration.Round(time.Millisecond))

		if r.Err != nil {
			slog.Error(msg, "error", r.Err)
			if r.Check.Critical {
				critical = append(critical, fmt.Errorf("%s: %w", r.Check.Name, r.Err))
			}
		} else {
			slog.Info(msg)
		}
	}

	return errors.Join(critical...)
}
