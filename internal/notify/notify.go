package notify

import (
	"context"
	"log"
	"sync"
	"time"
)

// Kind identifica la plantilla del correo.
type Kind string

const (
	KindRegistrationConfirmation Kind = "registration_confirmation"
	KindPasswordReset            Kind = "password_reset"
	KindRequestApproved          Kind = "request_approved"
	KindRequestRejected          Kind = "request_rejected"
	KindAppointmentApproved      Kind = "appointment_approved"
	KindAppointmentCancelled     Kind = "appointment_cancelled"
	KindDocumentRejected         Kind = "document_rejected"
	KindAdoptionFinalized        Kind = "adoption_finalized"
)

type Data map[string]any

// Sender entrega un correo ya resuelto a plantilla.
type Sender interface {
	Send(ctx context.Context, kind Kind, to string, data Data) error
}

// Notifier es lo que reciben los casos de uso: no bloquea ni devuelve error.
// Un fallo de envío nunca revierte la transición que lo disparó.
type Notifier interface {
	Notify(kind Kind, to string, data Data)
}

type message struct {
	kind Kind
	to   string
	data Data
}

// Dispatcher envía en segundo plano con un solo worker.
type Dispatcher struct {
	sender  Sender
	queue   chan message
	timeout time.Duration
	wg      sync.WaitGroup
	once    sync.Once

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(sender Sender) *Dispatcher {
	d := &Dispatcher{
		sender:  sender,
		queue:   make(chan message, 100),
		timeout: 15 * time.Second,
	}

	d.wg.Add(1)
	go d.worker()

	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for m := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		if err := d.sender.Send(ctx, m.kind, m.to, m.data); err != nil {
			log.Printf("notify kind=%s to=%s error=%v", m.kind, m.to, err)
		}
		cancel()
	}
}

func (d *Dispatcher) Notify(kind Kind, to string, data Data) {
	if to == "" {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		log.Printf("notify closed, dropped kind=%s to=%s", kind, to)
		return
	}

	select {
	case d.queue <- message{kind: kind, to: to, data: data}:
	default:
		log.Printf("notify queue full, dropped kind=%s to=%s", kind, to)
	}
}

// Close espera a que se vacíe la cola; Notify posterior se descarta.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		d.mu.Lock()
		d.closed = true
		close(d.queue)
		d.mu.Unlock()
		d.wg.Wait()
	})
}

// Discard ignora todas las notificaciones.
type Discard struct{}

func (Discard) Notify(Kind, string, Data) {}
