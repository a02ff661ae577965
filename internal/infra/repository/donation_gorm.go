package repository

import (
	"context"

	"github.com/BruksfildServices01/shelter-adoption/internal/domain/donation"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

// --------------------------------------------------
// Donation
// --------------------------------------------------

func (s *GormStore) CreateDonation(ctx context.Context, d *models.Donation) error {
	return s.db.WithContext(ctx).Create(d).Error
}

func (s *GormStore) GetDonation(ctx context.Context, id uint) (*models.Donation, error) {
	var d models.Donation
	if err := s.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *GormStore) UpdateDonation(ctx context.Context, d *models.Donation) error {
	return s.db.WithContext(ctx).Save(d).Error
}

func (s *GormStore) ListDonations(ctx context.Context, f donation.Filter) ([]models.Donation, error) {
	q := s.db.WithContext(ctx).Model(&models.Donation{})
	if f.Status != "" {
		q = q.Where("estado = ?", f.Status)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	var out []models.Donation
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
