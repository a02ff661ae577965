package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/shelter-adoption/internal/domain/adoptionrequest"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/pet"
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

// --------------------------------------------------
// Adoption request
// --------------------------------------------------

// CreateRequest inserta la solicitud y reserva la mascota en la misma
// transacción. La reserva es condicional: si otra solicitud ganó la
// carrera, el UPDATE no afecta filas o el índice parcial rechaza el INSERT.
func (s *GormStore) CreateRequest(ctx context.Context, r *models.AdoptionRequest) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(r).Error; err != nil {
			return err
		}

		res := tx.Model(&models.Pet{}).
			Where("id = ? AND estado = ? AND disponible_adopcion = ?", r.PetID, string(pet.StatusAvailable), true).
			Updates(map[string]any{
				"estado":              string(pet.StatusReserved),
				"disponible_adopcion": false,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.Conflict("pet_not_available")
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.petsChanged(ctx)
	return nil
}

func (s *GormStore) GetRequest(ctx context.Context, id uint) (*models.AdoptionRequest, error) {
	var r models.AdoptionRequest
	if err := s.db.WithContext(ctx).
		Preload("Pet").
		Preload("Profile").
		First(&r, id).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *GormStore) UpdateRequest(ctx context.Context, r *models.AdoptionRequest) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Save(r).Error
}

func (s *GormStore) ListRequests(ctx context.Context, f adoptionrequest.Filter) ([]models.AdoptionRequest, error) {
	q := s.db.WithContext(ctx).Preload("Pet").Preload("Profile")

	if f.ProfileID != 0 {
		q = q.Where("profile_id = ?", f.ProfileID)
	}
	if f.PetID != 0 {
		q = q.Where("pet_id = ?", f.PetID)
	}
	if len(f.Statuses) > 0 {
		q = q.Where("estado IN ?", f.Statuses)
	}

	var out []models.AdoptionRequest
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
