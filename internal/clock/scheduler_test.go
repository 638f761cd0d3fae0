package clock

import (
	"testing"
	"time"
)

func TestManualFiresOnlyWhenDue(t *testing.T) {
	m := NewManual(time.Unix(0, 0))
	var fired []string
	m.AfterFunc(time.Second, func() { fired = append(fired, "late") })
	m.AfterFunc(500*time.Millisecond, func() { fired = append(fired, "early") })

	m.Advance(400 * time.Millisecond)
	if len(fired) != 0 {
		t.Fatalf("expected nothing fired, got %v", fired)
	}
	m.Advance(time.Second)
	if len(fired) != 2 || fired[0] != "early" || fired[1] != "late" {
		t.Fatalf("unexpected firing order %v", fired)
	}
	if m.Pending() != 0 {
		t.Fatalf("expected no pending timers, got %d", m.Pending())
	}
}

func TestManualStop(t *testing.T) {
	m := NewManual(time.Unix(0, 0))
	called := false
	timer := m.AfterFunc(time.Millisecond, func() { called = true })
	if !timer.Stop() {
		t.Fatalf("expected stop to succeed")
	}
	m.Advance(time.Second)
	if called {
		t.Fatalf("stopped timer fired")
	}
	if timer.Stop() {
		t.Fatalf("second stop should report false")
	}
}
