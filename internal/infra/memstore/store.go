// Package memstore es un repositorio en memoria con la misma semántica
// que el GormStore; lo usan los tests de casos de uso y de rutas.
package memstore

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/shelter-adoption/internal/domain/adoption"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/adoptionrequest"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/appointment"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/document"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/donation"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/followup"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/pet"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/profile"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

var (
	_ profile.Repository         = (*Store)(nil)
	_ pet.Repository             = (*Store)(nil)
	_ document.Repository        = (*Store)(nil)
	_ adoptionrequest.Repository = (*Store)(nil)
	_ appointment.Repository     = (*Store)(nil)
	_ adoption.Repository        = (*Store)(nil)
	_ followup.Repository        = (*Store)(nil)
	_ donation.Repository        = (*Store)(nil)
)

// ErrInjected es el error por defecto de FailOn.
var ErrInjected = errors.New("memstore: injected failure")

type Store struct {
	mu     sync.Mutex
	nextID uint
	fail   map[string]error

	profiles  map[uint]models.Profile
	pets      map[uint]models.Pet
	documents map[uint]models.Document
	requests  map[uint]models.AdoptionRequest
	visits    map[uint]models.VisitAppointment
	vets      map[uint]models.VetAppointment
	adoptions map[uint]models.Adoption
	followUps map[uint]models.FollowUp
	donations map[uint]models.Donation
}

func New() *Store {
	return &Store{
		fail:      map[string]error{},
		profiles:  map[uint]models.Profile{},
		pets:      map[uint]models.Pet{},
		documents: map[uint]models.Document{},
		requests:  map[uint]models.AdoptionRequest{},
		visits:    map[uint]models.VisitAppointment{},
		vets:      map[uint]models.VetAppointment{},
		adoptions: map[uint]models.Adoption{},
		followUps: map[uint]models.FollowUp{},
		donations: map[uint]models.Donation{},
	}
}

// FailOn hace que el método indicado devuelva err (nil = ErrInjected).
func (s *Store) FailOn(method string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		err = ErrInjected
	}
	s.fail[method] = err
}

func (s *Store) check(method string) error {
	return s.fail[method]
}

func (s *Store) id() uint {
	s.nextID++
	return s.nextID
}

func stampNew(created, updated *time.Time) {
	now := time.Now()
	if created.IsZero() {
		*created = now
	}
	*updated = now
}

func notFound() error { return gorm.ErrRecordNotFound }

func contains(list []string, v string) bool {
	if len(list) == 0 {
		return true
	}
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func inRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && !t.Before(*to) {
		return false
	}
	return true
}

// --------------------------------------------------
// Profile
// --------------------------------------------------

func (s *Store) CreateProfile(_ context.Context, p *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check("CreateProfile"); err != nil {
		return err
	}
	for _, existing := range s.profiles {
		if strings.EqualFold(existing.Email, p.Email) || (p.CURP != "" && existing.CURP == p.CURP) {
			return gorm.ErrDuplicatedKey
		}
	}
	p.ID = s.id()
	if p.Role == "" {
		p.Role = "adoptante"
	}
	stampNew(&p.CreatedAt, &p.UpdatedAt)
	s.profiles[p.ID] = *p
	return nil
}

func (s *Store) GetProfile(_ context.Context, id uint) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[id]
	if !ok {
		return nil, notFound()
	}
	return &p, nil
}

func (s *Store) findProfile(match func(models.Profile) bool) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.profiles {
		if match(p) {
			p := p
			return &p, nil
		}
	}
	return nil, notFound()
}

func (s *Store) GetProfileByEmail(_ context.Context, email string) (*models.Profile, error) {
	email = strings.TrimSpace(email)
	return s.findProfile(func(p models.Profile) bool { return strings.EqualFold(p.Email, email) })
}

func (s *Store) GetProfileByConfirmToken(_ context.Context, hash string) (*models.Profile, error) {
	return s.findProfile(func(p models.Profile) bool { return hash != "" && p.ConfirmTokenHash == hash })
}

func (s *Store) GetProfileByResetToken(_ context.Context, hash string) (*models.Profile, error) {
	return s.findProfile(func(p models.Profile) bool { return hash != "" && p.ResetTokenHash == hash })
}

func (s *Store) UpdateProfile(_ context.Context, p *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[p.ID]; !ok {
		return notFound()
	}
	p.UpdatedAt = time.Now()
	s.profiles[p.ID] = *p
	return nil
}

func (s *Store) ListProfiles(_ context.Context, f profile.Filter) ([]models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	term := strings.ToLower(strings.TrimSpace(f.Query))
	var out []models.Profile
	for _, p := range s.profiles {
		if f.Role != "" && p.Role != f.Role {
			continue
		}
		if f.Active != nil && p.Active != *f.Active {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(p.FullName()+" "+p.Email+" "+p.CURP), term) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// --------------------------------------------------
// Pet
// --------------------------------------------------

func (s *Store) CreatePet(_ context.Context, p *models.Pet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.id()
	if p.Status == "" {
		p.Status = string(pet.StatusAvailable)
	}
	stampNew(&p.CreatedAt, &p.UpdatedAt)
	s.pets[p.ID] = *p
	return nil
}

func (s *Store) UpdatePet(_ context.Context, p *models.Pet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.pets[p.ID]
	if !ok {
		return notFound()
	}
	cur.Name = p.Name
	cur.Species = p.Species
	cur.Breed = p.Breed
	cur.Sex = p.Sex
	cur.Size = p.Size
	cur.AgeMonths = p.AgeMonths
	cur.Description = p.Description
	cur.PhotoURL = p.PhotoURL
	cur.UpdatedAt = time.Now()
	s.pets[p.ID] = cur
	return nil
}

func (s *Store) GetPet(_ context.Context, id uint) (*models.Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pets[id]
	if !ok {
		return nil, notFound()
	}
	return &p, nil
}

func (s *Store) SetPetStatus(_ context.Context, petID uint, status string, available bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check("SetPetStatus"); err != nil {
		return err
	}
	p, ok := s.pets[petID]
	if !ok {
		return notFound()
	}
	p.Status = status
	p.AvailableForAdoption = available
	p.UpdatedAt = time.Now()
	s.pets[petID] = p
	return nil
}

func (s *Store) ListPets(_ context.Context, f pet.Filter) ([]models.Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	term := strings.ToLower(strings.TrimSpace(f.Query))
	var out []models.Pet
	for _, p := range s.pets {
		switch {
		case f.Species != "" && p.Species != f.Species,
			f.Sex != "" && p.Sex != f.Sex,
			f.Size != "" && p.Size != f.Size,
			f.Status != "" && p.Status != f.Status,
			f.OnlyAvailable && !pet.IsAvailable(&p),
			term != "" && !strings.Contains(strings.ToLower(p.Name+" "+p.Breed), term):
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })

	if f.Offset > 0 {
		if f.Offset >= len(out) {
			return nil, nil
		}
		out = out[f.Offset:]
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

// --------------------------------------------------
// Document
// --------------------------------------------------

func (s *Store) ListDocuments(_ context.Context, profileID uint) ([]models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check("ListDocuments"); err != nil {
		return nil, err
	}
	var out []models.Document
	for _, d := range s.documents {
		if d.ProfileID == profileID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out, nil
}

func (s *Store) GetDocument(_ context.Context, id uint) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.documents[id]
	if !ok {
		return nil, notFound()
	}
	return &d, nil
}

func (s *Store) UpsertDocument(_ context.Context, d *models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check("UpsertDocument"); err != nil {
		return err
	}
	for id, existing := range s.documents {
		if existing.ProfileID == d.ProfileID && existing.Type == d.Type {
			d.ID = id
			d.CreatedAt = existing.CreatedAt
			d.UpdatedAt = time.Now()
			s.documents[id] = *d
			return nil
		}
	}
	d.ID = s.id()
	stampNew(&d.CreatedAt, &d.UpdatedAt)
	s.documents[d.ID] = *d
	return nil
}

func (s *Store) UpdateDocument(_ context.Context, d *models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.documents[d.ID]; !ok {
		return notFound()
	}
	d.UpdatedAt = time.Now()
	s.documents[d.ID] = *d
	return nil
}
