package lead

import "time"

// CancelFunc stops a scheduled task. It reports false if the task already
// fired or was already cancelled.
type CancelFunc func() bool

// Scheduler runs a function once after a delay. The manager uses it for the
// debounced draft snapshot; tests substitute a manual implementation to fire
// the task deterministically.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) CancelFunc
}

// TimerScheduler schedules tasks on real wall-clock timers.
type TimerScheduler struct{}

// Schedule implements Scheduler using time.AfterFunc.
func (TimerScheduler) Schedule(d time.Duration, fn func()) CancelFunc {
	t := time.AfterFunc(d, fn)
	return t.Stop
}
