package app

import (
	"context"
	"log"
	"time"

	"github.com/five82/sheetcal/internal/datemath"
)

const defaultWatchInterval = time.Minute

// StartTodayWatcher launches a background goroutine that calls notify once
// each time the local date changes. It wakes at the next midnight or after
// maxWait, whichever is first, so clock changes and suspends are noticed
// too. It returns immediately.
func StartTodayWatcher(ctx context.Context, clock func() time.Time, maxWait time.Duration, notify func(time.Time)) {
	if maxWait <= 0 {
		maxWait = defaultWatchInterval
	}
	go func() {
		day := datemath.StartOfDay(clock())
		for {
			timer := time.NewTimer(nextWake(clock(), maxWait))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}

			now := clock()
			if today := datemath.StartOfDay(now); !today.Equal(day) {
				log.Printf("app: date changed to %s", today.Format(time.DateOnly))
				day = today
				notify(now)
			}
		}
	}()
}

// nextWake is the time until the next local midnight, capped at maxWait.
func nextWake(now time.Time, maxWait time.Duration) time.Duration {
	wait := nextMidnight(now).Sub(now)
	if wait > maxWait {
		return maxWait
	}
	return wait
}

func nextMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location())
}
