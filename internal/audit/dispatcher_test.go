package audit

import (
	"errors"
	"sync"
	"testing"
)

type memWriter struct {
	mu     sync.Mutex
	events []Event
	fail   bool
}

func (w *memWriter) Log(ev Event) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fail {
		return errors.New("db down")
	}
	w.events = append(w.events, ev)
	return nil
}

func TestDispatcher_DeliversAndDrainsOnClose(t *testing.T) {
	w := &memWriter{}
	d := NewDispatcher(w)

	for i := 0; i < 10; i++ {
		d.Dispatch(Event{Action: "pet_created", Entity: "pet"})
	}
	d.Close()

	if len(w.events) != 10 {
		t.Fatalf("expected 10 events, got %d", len(w.events))
	}
}

func TestDispatcher_WriterErrorDoesNotStopWorker(t *testing.T) {
	w := &memWriter{fail: true}
	d := NewDispatcher(w)

	d.Dispatch(Event{Action: "a"})
	d.Dispatch(Event{Action: "b"})
	d.Close()

	if len(w.events) != 0 {
		t.Fatalf("expected no stored events, got %d", len(w.events))
	}
}

func TestDispatcher_DispatchAfterCloseIsDropped(t *testing.T) {
	w := &memWriter{}
	d := NewDispatcher(w)
	d.Close()

	// un handler rezagado tras el apagado no debe hacer panic
	d.Dispatch(Event{Action: "late"})
	d.Close()

	if len(w.events) != 0 {
		t.Fatalf("expected no events, got %d", len(w.events))
	}
}
