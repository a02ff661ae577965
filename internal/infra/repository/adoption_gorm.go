package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/shelter-adoption/internal/domain/adoption"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/adoptionrequest"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/pet"
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

// --------------------------------------------------
// Adoption
// --------------------------------------------------

func (s *GormStore) FinalizeAdoption(ctx context.Context, a *models.Adoption, followUps []models.FollowUp) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(a).Error; err != nil {
			return err
		}

		for i := range followUps {
			followUps[i].AdoptionID = a.ID
		}
		if err := tx.Create(&followUps).Error; err != nil {
			return err
		}

		res := tx.Model(&models.AdoptionRequest{}).
			Where("id = ? AND estado = ?", a.RequestID, string(adoptionrequest.StatusApproved)).
			Update("estado", string(adoptionrequest.StatusAdopted))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.Conflict("request_not_approved")
		}

		return tx.Model(&models.Pet{}).
			Where("id = ?", a.PetID).
			Updates(map[string]any{
				"estado":              string(pet.StatusAdopted),
				"disponible_adopcion": false,
			}).Error
	})
	if err != nil {
		return err
	}

	a.FollowUps = followUps
	s.petsChanged(ctx)
	return nil
}

func (s *GormStore) adoptionQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("Pet").
		Preload("FollowUps", func(db *gorm.DB) *gorm.DB {
			return db.Order("fecha_objetivo ASC")
		})
}

func (s *GormStore) GetAdoption(ctx context.Context, id uint) (*models.Adoption, error) {
	var a models.Adoption
	if err := s.adoptionQuery(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *GormStore) GetAdoptionByRequest(ctx context.Context, requestID uint) (*models.Adoption, error) {
	var a models.Adoption
	if err := s.adoptionQuery(ctx).
		Where("request_id = ?", requestID).
		First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *GormStore) UpdateAdoption(ctx context.Context, a *models.Adoption) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Save(a).Error
}

func (s *GormStore) ListAdoptions(ctx context.Context, f adoption.Filter) ([]models.Adoption, error) {
	q := s.adoptionQuery(ctx)

	if f.ProfileID != 0 {
		q = q.Where("profile_id = ?", f.ProfileID)
	}
	if f.PetID != 0 {
		q = q.Where("pet_id = ?", f.PetID)
	}
	if f.Status != "" {
		q = q.Where("estado = ?", f.Status)
	}

	var out []models.Adoption
	if err := q.Order("fecha_adopcion DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
