// Package scheduler delivers the day-boundary signal on a fixed interval.
package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultInterval is one calendar day.
const DefaultInterval = 24 * time.Hour

// DayReset calls Reset once per Interval until its context is cancelled.
// Reset must go through the same serialization point as every other engine call.
type DayReset struct {
	Interval time.Duration
	Reset    func()
}

// Run blocks until ctx is done. A non-positive interval uses DefaultInterval.
func (d DayReset) Run(ctx context.Context) {
	interval := d.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Debug().Dur("interval", interval).Msg("day reset scheduler started")
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.Reset()
			log.Info().Msg("day boundary: today's spending reset")
		}
	}
}
