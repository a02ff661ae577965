package repository

import (
	"context"

	"github.com/BruksfildServices01/shelter-adoption/internal/domain/followup"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

// --------------------------------------------------
// Follow-up
// --------------------------------------------------

func (s *GormStore) GetFollowUp(ctx context.Context, id uint) (*models.FollowUp, error) {
	var f models.FollowUp
	if err := s.db.WithContext(ctx).First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *GormStore) UpdateFollowUp(ctx context.Context, f *models.FollowUp) error {
	return s.db.WithContext(ctx).Save(f).Error
}

func (s *GormStore) ListFollowUps(ctx context.Context, f followup.Filter) ([]models.FollowUp, error) {
	q := s.db.WithContext(ctx).Model(&models.FollowUp{})

	if f.AdoptionID != 0 {
		q = q.Where("seguimientos.adoption_id = ?", f.AdoptionID)
	}
	if f.ProfileID != 0 {
		q = q.Joins("JOIN adopciones ON adopciones.id = seguimientos.adoption_id").
			Where("adopciones.profile_id = ?", f.ProfileID)
	}
	if f.OnlyOpen {
		q = q.Where("seguimientos.enviado_en IS NULL")
	}
	if f.DueBefore != nil {
		q = q.Where("seguimientos.fecha_objetivo < ?", *f.DueBefore)
	}

	var out []models.FollowUp
	if err := q.Order("seguimientos.fecha_objetivo ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
