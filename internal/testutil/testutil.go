// Package testutil reúne fakes y datos semilla para los tests de casos de uso.
package testutil

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"sync"
	"testing"
	"time"

	"github.com/BruksfildServices01/shelter-adoption/internal/audit"
	"github.com/BruksfildServices01/shelter-adoption/internal/auth"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/adoptionrequest"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/appointment"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/document"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/pet"
	"github.com/BruksfildServices01/shelter-adoption/internal/infra/memstore"
	"github.com/BruksfildServices01/shelter-adoption/internal/infra/storage"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
	"github.com/BruksfildServices01/shelter-adoption/internal/notify"
)

// Notifier registra las notificaciones en orden.
type Notifier struct {
	mu   sync.Mutex
	Sent []Sent
}

type Sent struct {
	Kind notify.Kind
	To   string
	Data notify.Data
}

func (n *Notifier) Notify(kind notify.Kind, to string, data notify.Data) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Sent = append(n.Sent, Sent{Kind: kind, To: to, Data: data})
}

func (n *Notifier) Kinds() []notify.Kind {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]notify.Kind, len(n.Sent))
	for i, s := range n.Sent {
		out[i] = s.Kind
	}
	return out
}

// Audit registra eventos de auditoría.
type Audit struct {
	mu     sync.Mutex
	Events []audit.Event
}

func (a *Audit) Dispatch(ev audit.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Events = append(a.Events, ev)
}

func (a *Audit) Has(action string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, ev := range a.Events {
		if ev.Action == action {
			return true
		}
	}
	return false
}

// Clock fijo para los casos de uso.
func Clock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func Profile(t *testing.T, s *memstore.Store, email string, role auth.Role) *models.Profile {
	t.Helper()
	p := &models.Profile{
		FirstName:      "Ana",
		LastName:       "López",
		Email:          email,
		Role:           string(role),
		Active:         true,
		EmailConfirmed: true,
	}
	if err := s.CreateProfile(context.Background(), p); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return p
}

func Pet(t *testing.T, s *memstore.Store, name string) *models.Pet {
	t.Helper()
	p := &models.Pet{
		Name:                 name,
		Species:              string(pet.SpeciesDog),
		Sex:                  string(pet.SexMale),
		Size:                 string(pet.SizeMedium),
		Status:               string(pet.StatusAvailable),
		AvailableForAdoption: true,
	}
	if err := s.CreatePet(context.Background(), p); err != nil {
		t.Fatalf("seed pet: %v", err)
	}
	return p
}

// ApprovedDocuments deja los tres documentos del perfil aprobados.
func ApprovedDocuments(t *testing.T, s *memstore.Store, profileID uint) {
	t.Helper()
	for _, typ := range document.RequiredTypes {
		d := &models.Document{
			ProfileID: profileID,
			Type:      string(typ),
			Status:    string(document.StatusApproved),
			FileKey:   "k",
			FileURL:   "memory://k",
		}
		if err := s.UpsertDocument(context.Background(), d); err != nil {
			t.Fatalf("seed document: %v", err)
		}
	}
}

func Actor(p *models.Profile) auth.Actor {
	return auth.Actor{ProfileID: p.ID, Role: auth.Role(p.Role)}
}

// ApprovedRequest crea la solicitud (reservando la mascota) y la deja aprobada.
func ApprovedRequest(t *testing.T, s *memstore.Store, profileID, petID uint) *models.AdoptionRequest {
	t.Helper()
	ctx := context.Background()
	r := &models.AdoptionRequest{
		ProfileID: profileID,
		PetID:     petID,
		Status:    string(adoptionrequest.StatusPending),
	}
	if err := s.CreateRequest(ctx, r); err != nil {
		t.Fatalf("seed request: %v", err)
	}
	r.Status = string(adoptionrequest.StatusApproved)
	if err := s.UpdateRequest(ctx, r); err != nil {
		t.Fatalf("approve request: %v", err)
	}
	return r
}

// HeldVisit deja una cita aprobada en el pasado con el resultado dado.
func HeldVisit(t *testing.T, s *memstore.Store, r *models.AdoptionRequest, at time.Time, a appointment.Attendance, i appointment.Interaction) *models.VisitAppointment {
	t.Helper()
	att, inter := string(a), string(i)
	v := &models.VisitAppointment{
		RequestID:         r.ID,
		ProfileID:         r.ProfileID,
		PetID:             r.PetID,
		ScheduledAt:       at,
		Status:            string(appointment.StatusApproved),
		Attendance:        &att,
		Interaction:       &inter,
		OutcomeRecordedAt: &at,
	}
	if err := s.CreateVisit(context.Background(), v); err != nil {
		t.Fatalf("seed visit: %v", err)
	}
	return v
}

// Photo es una imagen png válida para los flujos de evidencia.
func Photo(name string) storage.File {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return storage.File{Name: name, Data: buf.Bytes()}
}
