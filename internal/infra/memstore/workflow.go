package memstore

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/shelter-adoption/internal/domain/adoption"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/adoptionrequest"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/appointment"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/donation"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/followup"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/pet"
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

// --------------------------------------------------
// Adoption request
// --------------------------------------------------

// CreateRequest replica la transacción del GormStore: índice parcial por
// mascota y reserva condicional.
func (s *Store) CreateRequest(_ context.Context, r *models.AdoptionRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check("CreateRequest"); err != nil {
		return err
	}

	for _, existing := range s.requests {
		if existing.PetID == r.PetID && adoptionrequest.Status(existing.Status).Active() {
			return gorm.ErrDuplicatedKey
		}
	}

	p, ok := s.pets[r.PetID]
	if !ok || !pet.IsAvailable(&p) {
		return httperr.Conflict("pet_not_available")
	}
	p.Status = string(pet.StatusReserved)
	p.AvailableForAdoption = false
	s.pets[p.ID] = p

	r.ID = s.id()
	stampNew(&r.CreatedAt, &r.UpdatedAt)
	r.Pet = models.Pet{}
	r.Profile = models.Profile{}
	s.requests[r.ID] = *r
	return nil
}

func (s *Store) hydrateRequest(r models.AdoptionRequest) models.AdoptionRequest {
	r.Pet = s.pets[r.PetID]
	r.Profile = s.profiles[r.ProfileID]
	return r
}

func (s *Store) GetRequest(_ context.Context, id uint) (*models.AdoptionRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.requests[id]
	if !ok {
		return nil, notFound()
	}
	r = s.hydrateRequest(r)
	return &r, nil
}

func (s *Store) UpdateRequest(_ context.Context, r *models.AdoptionRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check("UpdateRequest"); err != nil {
		return err
	}
	if _, ok := s.requests[r.ID]; !ok {
		return notFound()
	}
	r.UpdatedAt = time.Now()
	stored := *r
	stored.Pet = models.Pet{}
	stored.Profile = models.Profile{}
	s.requests[r.ID] = stored
	return nil
}

func (s *Store) ListRequests(_ context.Context, f adoptionrequest.Filter) ([]models.AdoptionRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.AdoptionRequest
	for _, r := range s.requests {
		if f.ProfileID != 0 && r.ProfileID != f.ProfileID {
			continue
		}
		if f.PetID != 0 && r.PetID != f.PetID {
			continue
		}
		if !contains(f.Statuses, r.Status) {
			continue
		}
		out = append(out, s.hydrateRequest(r))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// --------------------------------------------------
// Visit appointment
// --------------------------------------------------

func (s *Store) CreateVisit(_ context.Context, v *models.VisitAppointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if appointment.Status(v.Status).Live() {
		for _, existing := range s.visits {
			if existing.RequestID == v.RequestID && appointment.Status(existing.Status).Live() {
				return gorm.ErrDuplicatedKey
			}
		}
	}
	v.ID = s.id()
	stampNew(&v.CreatedAt, &v.UpdatedAt)
	s.visits[v.ID] = *v
	return nil
}

func (s *Store) GetVisit(_ context.Context, id uint) (*models.VisitAppointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.visits[id]
	if !ok {
		return nil, notFound()
	}
	return &v, nil
}

func (s *Store) UpdateVisit(_ context.Context, v *models.VisitAppointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check("UpdateVisit"); err != nil {
		return err
	}
	if _, ok := s.visits[v.ID]; !ok {
		return notFound()
	}
	v.UpdatedAt = time.Now()
	s.visits[v.ID] = *v
	return nil
}

func (s *Store) ListVisits(_ context.Context, f appointment.VisitFilter) ([]models.VisitAppointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.VisitAppointment
	for _, v := range s.visits {
		if f.RequestID != 0 && v.RequestID != f.RequestID {
			continue
		}
		if f.ProfileID != 0 && v.ProfileID != f.ProfileID {
			continue
		}
		if !contains(f.Statuses, v.Status) || !inRange(v.ScheduledAt, f.From, f.To) {
			continue
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledAt.Before(out[j].ScheduledAt) })
	return out, nil
}

// --------------------------------------------------
// Veterinary appointment
// --------------------------------------------------

func (s *Store) CreateVetAppointment(_ context.Context, v *models.VetAppointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v.ID = s.id()
	stampNew(&v.CreatedAt, &v.UpdatedAt)
	s.vets[v.ID] = *v
	return nil
}

func (s *Store) GetVetAppointment(_ context.Context, id uint) (*models.VetAppointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.vets[id]
	if !ok {
		return nil, notFound()
	}
	return &v, nil
}

func (s *Store) UpdateVetAppointment(_ context.Context, v *models.VetAppointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.vets[v.ID]; !ok {
		return notFound()
	}
	v.UpdatedAt = time.Now()
	s.vets[v.ID] = *v
	return nil
}

func (s *Store) ListVetAppointments(_ context.Context, f appointment.VetFilter) ([]models.VetAppointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.VetAppointment
	for _, v := range s.vets {
		if f.ProfileID != 0 && v.ProfileID != f.ProfileID {
			continue
		}
		if f.PetID != 0 && v.PetID != f.PetID {
			continue
		}
		if !contains(f.Statuses, v.Status) || !inRange(v.ScheduledAt, f.From, f.To) {
			continue
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledAt.Before(out[j].ScheduledAt) })
	return out, nil
}

// --------------------------------------------------
// Adoption
// --------------------------------------------------

func (s *Store) FinalizeAdoption(_ context.Context, a *models.Adoption, fus []models.FollowUp) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check("FinalizeAdoption"); err != nil {
		return err
	}

	for _, existing := range s.adoptions {
		if existing.RequestID == a.RequestID {
			return gorm.ErrDuplicatedKey
		}
	}
	req, ok := s.requests[a.RequestID]
	if !ok || adoptionrequest.Status(req.Status) != adoptionrequest.StatusApproved {
		return httperr.Conflict("request_not_approved")
	}

	a.ID = s.id()
	stampNew(&a.CreatedAt, &a.UpdatedAt)
	for i := range fus {
		fus[i].AdoptionID = a.ID
		fus[i].ID = s.id()
		stampNew(&fus[i].CreatedAt, &fus[i].UpdatedAt)
		s.followUps[fus[i].ID] = fus[i]
	}

	stored := *a
	stored.Pet = models.Pet{}
	stored.FollowUps = nil
	s.adoptions[a.ID] = stored

	req.Status = string(adoptionrequest.StatusAdopted)
	s.requests[req.ID] = req

	p := s.pets[a.PetID]
	p.Status = string(pet.StatusAdopted)
	p.AvailableForAdoption = false
	s.pets[p.ID] = p

	a.FollowUps = fus
	return nil
}

func (s *Store) hydrateAdoption(a models.Adoption) models.Adoption {
	a.Pet = s.pets[a.PetID]
	a.FollowUps = nil
	for _, f := range s.followUps {
		if f.AdoptionID == a.ID {
			a.FollowUps = append(a.FollowUps, f)
		}
	}
	sort.Slice(a.FollowUps, func(i, j int) bool {
		return a.FollowUps[i].TargetDate.Before(a.FollowUps[j].TargetDate)
	})
	return a
}

func (s *Store) GetAdoption(_ context.Context, id uint) (*models.Adoption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.adoptions[id]
	if !ok {
		return nil, notFound()
	}
	a = s.hydrateAdoption(a)
	return &a, nil
}

func (s *Store) GetAdoptionByRequest(_ context.Context, requestID uint) (*models.Adoption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.adoptions {
		if a.RequestID == requestID {
			a = s.hydrateAdoption(a)
			return &a, nil
		}
	}
	return nil, notFound()
}

func (s *Store) UpdateAdoption(_ context.Context, a *models.Adoption) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.adoptions[a.ID]; !ok {
		return notFound()
	}
	a.UpdatedAt = time.Now()
	stored := *a
	stored.Pet = models.Pet{}
	stored.FollowUps = nil
	s.adoptions[a.ID] = stored
	return nil
}

func (s *Store) ListAdoptions(_ context.Context, f adoption.Filter) ([]models.Adoption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Adoption
	for _, a := range s.adoptions {
		if f.ProfileID != 0 && a.ProfileID != f.ProfileID {
			continue
		}
		if f.PetID != 0 && a.PetID != f.PetID {
			continue
		}
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		out = append(out, s.hydrateAdoption(a))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// --------------------------------------------------
// Follow-up
// --------------------------------------------------

func (s *Store) GetFollowUp(_ context.Context, id uint) (*models.FollowUp, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.followUps[id]
	if !ok {
		return nil, notFound()
	}
	return &f, nil
}

func (s *Store) UpdateFollowUp(_ context.Context, f *models.FollowUp) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.followUps[f.ID]; !ok {
		return notFound()
	}
	f.UpdatedAt = time.Now()
	s.followUps[f.ID] = *f
	return nil
}

func (s *Store) ListFollowUps(_ context.Context, f followup.Filter) ([]models.FollowUp, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.FollowUp
	for _, fu := range s.followUps {
		if f.AdoptionID != 0 && fu.AdoptionID != f.AdoptionID {
			continue
		}
		if f.ProfileID != 0 && s.adoptions[fu.AdoptionID].ProfileID != f.ProfileID {
			continue
		}
		if f.OnlyOpen && fu.SubmittedAt != nil {
			continue
		}
		if f.DueBefore != nil && !fu.TargetDate.Before(*f.DueBefore) {
			continue
		}
		out = append(out, fu)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TargetDate.Before(out[j].TargetDate) })
	return out, nil
}

// --------------------------------------------------
// Donation
// --------------------------------------------------

func (s *Store) CreateDonation(_ context.Context, d *models.Donation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.ID = s.id()
	stampNew(&d.CreatedAt, &d.UpdatedAt)
	s.donations[d.ID] = *d
	return nil
}

func (s *Store) GetDonation(_ context.Context, id uint) (*models.Donation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.donations[id]
	if !ok {
		return nil, notFound()
	}
	return &d, nil
}

func (s *Store) UpdateDonation(_ context.Context, d *models.Donation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.donations[d.ID]; !ok {
		return notFound()
	}
	d.UpdatedAt = time.Now()
	s.donations[d.ID] = *d
	return nil
}

func (s *Store) ListDonations(_ context.Context, f donation.Filter) ([]models.Donation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Donation
	for _, d := range s.donations {
		if f.Status != "" && d.Status != f.Status {
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

// --------------------------------------------------
// Dashboard counters
// --------------------------------------------------

func (s *Store) CountPetsByStatus(context.Context) (map[string]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := map[string]int64{}
	for _, p := range s.pets {
		out[p.Status]++
	}
	return out, nil
}

func (s *Store) CountRequestsByStatus(context.Context) (map[string]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := map[string]int64{}
	for _, r := range s.requests {
		out[r.Status]++
	}
	return out, nil
}

func (s *Store) CountDocumentsByStatus(context.Context) (map[string]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := map[string]int64{}
	for _, d := range s.documents {
		out[d.Status]++
	}
	return out, nil
}

func (s *Store) SumDonations(_ context.Context, status string) (float64, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	var n int64
	for _, d := range s.donations {
		if d.Status == status {
			total += d.Amount
			n++
		}
	}
	return total, n, nil
}
