package audit

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

type Writer interface {
	Log(ev Event) error
}

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

// Log persiste el evento; un detalle que no serializa se guarda vacío.
func (l *Logger) Log(ev Event) error {
	var meta datatypes.JSON
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			meta = datatypes.JSON(b)
		}
	}

	entry := models.AuditLog{
		ActorID:  ev.ActorID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: meta,
	}

	return l.db.Create(&entry).Error
}

// Query filtra el listado de bitácora del admin.
type Query struct {
	ActorID *uint
	Action  string
	Entity  string
	From    *time.Time
	To      *time.Time
	Page    int
	Limit   int
}

func (q *Query) Normalize() {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 || q.Limit > 200 {
		q.Limit = 50
	}
}

// List devuelve una página de la bitácora, más recientes primero, y el total.
func (l *Logger) List(ctx context.Context, q Query) ([]models.AuditLog, int64, error) {
	q.Normalize()

	tx := l.db.WithContext(ctx).Model(&models.AuditLog{})
	if q.ActorID != nil {
		tx = tx.Where("actor_id = ?", *q.ActorID)
	}
	if q.Action != "" {
		tx = tx.Where("accion = ?", q.Action)
	}
	if q.Entity != "" {
		tx = tx.Where("entidad = ?", q.Entity)
	}
	if q.From != nil {
		tx = tx.Where("created_at >= ?", *q.From)
	}
	if q.To != nil {
		tx = tx.Where("created_at < ?", *q.To)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	err := tx.
		Order("created_at DESC").
		Limit(q.Limit).
		Offset((q.Page - 1) * q.Limit).
		Find(&logs).Error
	return logs, total, err
}
