package audit

import (
	"log"
	"sync"
)

type Event struct {
	ActorID  *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Sink es lo que reciben los casos de uso.
type Sink interface {
	Dispatch(ev Event)
}

type Dispatcher struct {
	logger Writer
	queue  chan Event
	done   chan struct{}
	once   sync.Once

	// mu protege queue frente a Close; Dispatch toma solo lectura.
	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(logger Writer) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.logger.Log(ev); err != nil {
			log.Printf("audit action=%s error=%v", ev.Action, err)
		}
	}
}

// Dispatch tras Close descarta el evento.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		log.Printf("audit closed, dropping action=%s", ev.Action)
		return
	}

	select {
	case d.queue <- ev:
	default:
		// fila llena: se pierde el evento, nunca se bloquea la API
		log.Printf("audit queue full, dropping action=%s", ev.Action)
	}
}

// Close drena la fila al apagar el servidor; llamadas repetidas no hacen nada.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		d.mu.Lock()
		d.closed = true
		close(d.queue)
		d.mu.Unlock()
		<-d.done
	})
}

// Discard ignora los eventos.
type Discard struct{}

func (Discard) Dispatch(Event) {}
