package twine

import "time"

// debugStats holds per-tick timing and scheduling counts.
// Only populated when the scheduler is in debug mode.
type debugStats struct {
	tickTime time.Duration
	live     int
	deferred int
	dropped  int
}

// debugLog prints per-tick stats to the scheduler's logger.
func (s *Scheduler) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	s.logger.Printf("tick: %v | live: %d | deferred: %d | dropped: %d",
		stats.tickTime, stats.live, stats.deferred, stats.dropped)
}
