package repository

import (
	"context"

	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/shelter-adoption/internal/domain/appointment"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

// --------------------------------------------------
// Visit appointment
// --------------------------------------------------

func (s *GormStore) CreateVisit(ctx context.Context, v *models.VisitAppointment) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Create(v).Error
}

func (s *GormStore) GetVisit(ctx context.Context, id uint) (*models.VisitAppointment, error) {
	var v models.VisitAppointment
	if err := s.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *GormStore) UpdateVisit(ctx context.Context, v *models.VisitAppointment) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Save(v).Error
}

func (s *GormStore) ListVisits(ctx context.Context, f appointment.VisitFilter) ([]models.VisitAppointment, error) {
	q := s.db.WithContext(ctx).Model(&models.VisitAppointment{})

	if f.RequestID != 0 {
		q = q.Where("request_id = ?", f.RequestID)
	}
	if f.ProfileID != 0 {
		q = q.Where("profile_id = ?", f.ProfileID)
	}
	if len(f.Statuses) > 0 {
		q = q.Where("estado IN ?", f.Statuses)
	}
	if f.From != nil {
		q = q.Where("scheduled_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("scheduled_at < ?", *f.To)
	}

	var out []models.VisitAppointment
	if err := q.Order("scheduled_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// --------------------------------------------------
// Veterinary appointment
// --------------------------------------------------

func (s *GormStore) CreateVetAppointment(ctx context.Context, v *models.VetAppointment) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Create(v).Error
}

func (s *GormStore) GetVetAppointment(ctx context.Context, id uint) (*models.VetAppointment, error) {
	var v models.VetAppointment
	if err := s.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *GormStore) UpdateVetAppointment(ctx context.Context, v *models.VetAppointment) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Save(v).Error
}

func (s *GormStore) ListVetAppointments(ctx context.Context, f appointment.VetFilter) ([]models.VetAppointment, error) {
	q := s.db.WithContext(ctx).Model(&models.VetAppointment{})

	if f.ProfileID != 0 {
		q = q.Where("profile_id = ?", f.ProfileID)
	}
	if f.PetID != 0 {
		q = q.Where("pet_id = ?", f.PetID)
	}
	if len(f.Statuses) > 0 {
		q = q.Where("estado IN ?", f.Statuses)
	}
	if f.From != nil {
		q = q.Where("scheduled_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("scheduled_at < ?", *f.To)
	}

	var out []models.VetAppointment
	if err := q.Order("scheduled_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
