package clock

import (
	"testing"
	"time"
)

func TestUntilNextMidnight(t *testing.T) {
	now := time.Date(2024, 1, 11, 23, 59, 0, 0, time.Local)
	wait := UntilNextMidnight(now)
	if wait != time.Minute+time.Second {
		t.Fatalf("expected 1m1s, got %v", wait)
	}

	morning := time.Date(2024, 1, 11, 0, 0, 0, 0, time.Local)
	wait = UntilNextMidnight(morning)
	if wait != 24*time.Hour+time.Second {
		t.Fatalf("expected full day wait at midnight, got %v", wait)
	}
}

func TestWatcherStartStopIdempotent(t *testing.T) {
	w := NewWatcher()
	w.Start()
	w.Start()
	w.Stop()
	w.Stop()

	select {
	case _, open := <-w.C():
		if open {
			t.Fatal("expected closed channel after stop")
		}
	case <-time.After(time.Second):
		t.Fatal("channel not closed after stop")
	}
}

func TestWatcherEmitsOnRollover(t *testing.T) {
	w := NewWatcher()
	// Pin the clock just before midnight so the first timer fires quickly.
	base := time.Date(2024, 1, 11, 23, 59, 59, int(900*time.Millisecond), time.Local)
	start := time.Now()
	w.now = func() time.Time { return base.Add(time.Since(start)) }
	w.Start()
	defer w.Stop()

	select {
	case ev := <-w.C():
		if ev.Date != "2024-01-12" {
			t.Fatalf("expected rolled-over date, got %q", ev.Date)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no day event emitted")
	}
}
