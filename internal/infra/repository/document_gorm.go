package repository

import (
	"context"

	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

// --------------------------------------------------
// Document
// --------------------------------------------------

func (s *GormStore) ListDocuments(ctx context.Context, profileID uint) ([]models.Document, error) {
	var out []models.Document
	if err := s.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("tipo ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStore) GetDocument(ctx context.Context, id uint) (*models.Document, error) {
	var d models.Document
	if err := s.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// UpsertDocument: ON CONFLICT (profile_id, tipo) pisa archivo y revisión.
func (s *GormStore) UpsertDocument(ctx context.Context, d *models.Document) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "profile_id"}, {Name: "tipo"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"estado",
				"motivo_rechazo",
				"file_key",
				"file_url",
				"reviewed_by",
				"reviewed_at",
				"updated_at",
			}),
		}).
		Create(d).Error
}

func (s *GormStore) UpdateDocument(ctx context.Context, d *models.Document) error {
	return s.db.WithContext(ctx).Save(d).Error
}
