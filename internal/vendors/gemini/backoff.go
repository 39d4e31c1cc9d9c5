package gemini

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
)

// Backoff waits an exponentially growing delay between attempts:
// base * 2^attempt, where attempt starts at 0.
type Backoff struct {
	base  time.Duration
	sleep func(ctx context.Context, d time.Duration) error

	debug bool
}

func NewBackoff(base time.Duration, debug bool) Backoff {
	return Backoff{
		base:  base,
		sleep: sleepCtx,
		debug: debug,
	}
}

// maxDelay caps the backoff, so that the shift can't overflow into a negative
// or zero delay.
const maxDelay = time.Duration(math.MaxInt64 >> 1)

// Delay for the given zero-indexed attempt, at most maxDelay.
func (b Backoff) Delay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	if b.base <= 0 {
		return 0
	}
	if attempt >= 62 || b.base > maxDelay>>attempt {
		return maxDelay
	}
	return b.base << attempt
}

// Wait for the delay of attempt. Returns ctx.Err() if the context is done
// before the delay has passed.
func (b Backoff) Wait(ctx context.Context, attempt int) error {
	d := b.Delay(attempt)
	if b.debug {
		ancli.PrintOK(fmt.Sprintf("backoff: waiting %v before attempt %v\n", d, attempt+2))
	}
	sleep := b.sleep
	if sleep == nil {
		sleep = sleepCtx
	}
	return sleep(ctx, d)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	select {
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
