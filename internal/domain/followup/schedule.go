package followup

import (
	"time"

	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

// Checkpoint identifica cada visita de seguimiento.
type Checkpoint string

const (
	CheckpointOneWeek   Checkpoint = "1_semana"
	CheckpointOneMonth  Checkpoint = "1_mes"
	CheckpointTwoMonths Checkpoint = "2_meses"
	CheckpointSixMonths Checkpoint = "6_meses"
)

type offset struct {
	checkpoint          Checkpoint
	years, months, days int
}

var cadence = []offset{
	{CheckpointOneWeek, 0, 0, 7},
	{CheckpointOneMonth, 0, 1, 0},
	{CheckpointTwoMonths, 0, 2, 0},
	{CheckpointSixMonths, 0, 6, 0},
}

// Count de seguimientos por adopción.
func Count() int { return len(cadence) }

// Schedule arma las cuatro filas a partir de la fecha de adopción.
// AddDate normaliza fin de mes (31 ene + 1 mes = 3 mar).
func Schedule(adoptedAt time.Time) []models.FollowUp {
	out := make([]models.FollowUp, 0, len(cadence))
	for _, o := range cadence {
		out = append(out, models.FollowUp{
			Checkpoint: string(o.checkpoint),
			TargetDate: adoptedAt.AddDate(o.years, o.months, o.days),
			Status:     string(StoredPending),
		})
	}
	return out
}
