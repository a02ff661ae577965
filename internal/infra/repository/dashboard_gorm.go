package repository

import (
	"context"

	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

// --------------------------------------------------
// Dashboard counters
// --------------------------------------------------

type countRow struct {
	Key string
	N   int64
}

func (s *GormStore) countBy(ctx context.Context, model any, column string) (map[string]int64, error) {
	var rows []countRow
	if err := s.db.WithContext(ctx).
		Model(model).
		Select(column + " AS key, COUNT(*) AS n").
		Group(column).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Key] = r.N
	}
	return out, nil
}

func (s *GormStore) CountPetsByStatus(ctx context.Context) (map[string]int64, error) {
	return s.countBy(ctx, &models.Pet{}, "estado")
}

func (s *GormStore) CountRequestsByStatus(ctx context.Context) (map[string]int64, error) {
	return s.countBy(ctx, &models.AdoptionRequest{}, "estado")
}

func (s *GormStore) CountDocumentsByStatus(ctx context.Context) (map[string]int64, error) {
	return s.countBy(ctx, &models.Document{}, "estado")
}

func (s *GormStore) SumDonations(ctx context.Context, status string) (float64, int64, error) {
	var row struct {
		Total float64
		N     int64
	}
	if err := s.db.WithContext(ctx).
		Model(&models.Donation{}).
		Select("COALESCE(SUM(monto), 0) AS total, COUNT(*) AS n").
		Where("estado = ?", status).
		Scan(&row).Error; err != nil {
		return 0, 0, err
	}
	return row.Total, row.N, nil
}
