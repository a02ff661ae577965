package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/shelter-adoption/internal/domain/pet"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

// --------------------------------------------------
// Pet
// --------------------------------------------------

func (s *GormStore) CreatePet(ctx context.Context, p *models.Pet) error {
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return err
	}
	s.petsChanged(ctx)
	return nil
}

// columnas de la ficha; estado y disponible_adopcion quedan fuera
var petCatalogColumns = []string{
	"name", "especie", "raza", "sexo", "tamano", "edad_meses", "descripcion", "foto_url", "updated_at",
}

func (s *GormStore) UpdatePet(ctx context.Context, p *models.Pet) error {
	res := s.db.WithContext(ctx).
		Model(p).
		Select(petCatalogColumns).
		Updates(p)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	s.petsChanged(ctx)
	return nil
}

func (s *GormStore) GetPet(ctx context.Context, id uint) (*models.Pet, error) {
	var p models.Pet
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *GormStore) SetPetStatus(ctx context.Context, petID uint, status string, available bool) error {
	res := s.db.WithContext(ctx).
		Model(&models.Pet{}).
		Where("id = ?", petID).
		Updates(map[string]any{
			"estado":              status,
			"disponible_adopcion": available,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	s.petsChanged(ctx)
	return nil
}

func (s *GormStore) ListPets(ctx context.Context, f pet.Filter) ([]models.Pet, error) {
	q := s.db.WithContext(ctx).Model(&models.Pet{})

	if f.Species != "" {
		q = q.Where("especie = ?", f.Species)
	}
	if f.Sex != "" {
		q = q.Where("sexo = ?", f.Sex)
	}
	if f.Size != "" {
		q = q.Where("tamano = ?", f.Size)
	}
	if f.Status != "" {
		q = q.Where("estado = ?", f.Status)
	}
	if f.OnlyAvailable {
		q = q.Where("estado = ? AND disponible_adopcion = ?", string(pet.StatusAvailable), true)
	}
	if term := strings.TrimSpace(f.Query); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Where("(LOWER(name) LIKE ? OR LOWER(raza) LIKE ?)", like, like)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	var out []models.Pet
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
