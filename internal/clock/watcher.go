package clock

import (
	"sync"
	"time"
)

// DayEvent signals that the local calendar date has rolled over.
type DayEvent struct {
	Date string
}

const dateLayout = "2006-01-02"

// Watcher emits a DayEvent shortly after each local midnight so the UI can
// re-evaluate the daily-entry gate without any user action. One goroutine,
// one buffered channel; events that nobody is ready for are dropped rather
// than blocking the timer loop.
type Watcher struct {
	mu      sync.Mutex
	out     chan DayEvent
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	stopped bool
	now     func() time.Time
}

func NewWatcher() *Watcher {
	return &Watcher{
		out:    make(chan DayEvent, 1),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
		now:    time.Now,
	}
}

func (w *Watcher) C() <-chan DayEvent {
	return w.out
}

func (w *Watcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return
	}
	w.started = true
	go w.loop()
}

func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.started || w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	close(w.stopCh)
	w.mu.Unlock()
	<-w.doneCh
}

func (w *Watcher) loop() {
	defer close(w.doneCh)
	defer close(w.out)

	timer := time.NewTimer(UntilNextMidnight(w.now()))
	defer timer.Stop()
	for {
		select {
		case <-timer.C:
			event := DayEvent{Date: w.now().In(time.Local).Format(dateLayout)}
			select {
			case w.out <- event:
			default:
			}
			timer.Reset(UntilNextMidnight(w.now()))
		case <-w.stopCh:
			return
		}
	}
}

// UntilNextMidnight is the wait from now to just past the next local
// midnight. The small offset keeps the fired event on the new date even
// with coarse timer resolution.
func UntilNextMidnight(now time.Time) time.Duration {
	local := now.In(time.Local)
	next := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local).AddDate(0, 0, 1)
	return next.Sub(local) + time.Second
}
