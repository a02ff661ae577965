package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/shelter-adoption/internal/domain/profile"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

// --------------------------------------------------
// Profile
// --------------------------------------------------

func (s *GormStore) CreateProfile(ctx context.Context, p *models.Profile) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *GormStore) GetProfile(ctx context.Context, id uint) (*models.Profile, error) {
	var p models.Profile
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *GormStore) GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error) {
	return s.firstProfile(ctx, "LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email)))
}

func (s *GormStore) GetProfileByConfirmToken(ctx context.Context, hash string) (*models.Profile, error) {
	return s.firstProfile(ctx, "confirm_token_hash = ? AND confirm_token_hash <> ''", hash)
}

func (s *GormStore) GetProfileByResetToken(ctx context.Context, hash string) (*models.Profile, error) {
	return s.firstProfile(ctx, "reset_token_hash = ? AND reset_token_hash <> ''", hash)
}

func (s *GormStore) firstProfile(ctx context.Context, where string, args ...any) (*models.Profile, error) {
	if len(args) == 1 && args[0] == "" {
		return nil, gorm.ErrRecordNotFound
	}

	var p models.Profile
	if err := s.db.WithContext(ctx).Where(where, args...).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *GormStore) UpdateProfile(ctx context.Context, p *models.Profile) error {
	return s.db.WithContext(ctx).Save(p).Error
}

func (s *GormStore) ListProfiles(ctx context.Context, f profile.Filter) ([]models.Profile, error) {
	q := s.db.WithContext(ctx).Model(&models.Profile{})

	if f.Role != "" {
		q = q.Where("rol = ?", f.Role)
	}
	if f.Active != nil {
		q = q.Where("activo = ?", *f.Active)
	}
	if term := strings.TrimSpace(f.Query); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Where(
			"(LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(curp) LIKE ?)",
			like, like, like, like,
		)
	}

	var out []models.Profile
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
