// Package health probes backend reachability. Purely informational: it
// never touches session state.
package health

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/rs/zerolog/log"

	"github.com/conectavoz/conectavoz/internal/api"
)

// DefaultInterval matches the original UI's connection indicator, which
// re-probed every 30 seconds.
const DefaultInterval = 30 * time.Second

// Status is the outcome of a single probe.
type Status struct {
	Reachable bool
	Latency   time.Duration
	CheckedAt time.Time
	Err       error
}

// Checker probes the backend's health endpoint.
type Checker struct {
	client   *api.Client
	interval time.Duration
}

// NewChecker creates a checker with the default probe interval.
func NewChecker(client *api.Client) *Checker {
	return &Checker{client: client, interval: DefaultInterval}
}

// Interval returns the probe interval.
func (c *Checker) Interval() time.Duration { return c.interval }

// Check performs one probe.
func (c *Checker) Check(ctx context.Context) Status {
	started := time.Now()
	err := c.client.Health(ctx)

	status := Status{
		Reachable: err == nil,
		Latency:   time.Since(started),
		CheckedAt: time.Now(),
		Err:       err,
	}

	log.Debug().
		Bool("reachable", status.Reachable).
		Dur("latency", status.Latency).
		Msg("health probe")

	return status
}

// Watch probes immediately and then on a fixed interval, sending each
// Status on the returned channel. The goroutine and its ticker stop, and
// the channel closes, when ctx is cancelled.
func (c *Checker) Watch(ctx context.Context) <-chan Status {
	out := make(chan Status, 1)

	go func() {
		defer close(out)

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		out <- c.Check(ctx)

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				select {
				case out <- c.Check(ctx):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

// WaitReachable blocks until the backend answers a probe, retrying with
// exponential backoff, or until maxWait elapses. This is the only place
// the client retries anything automatically.
func (c *Checker) WaitReachable(ctx context.Context, maxWait time.Duration) error {
	operation := func() (struct{}, error) {
		if err := c.client.Health(ctx); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	}

	_, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(maxWait),
	)
	return err
}
