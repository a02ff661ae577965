package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog es una fila de la bitácora; se escribe una vez y nunca se edita.
type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ActorID *uint  `gorm:"column:actor_id;index" json:"actor_id"`
	Action  string `gorm:"column:accion;size:60;not null;index" json:"accion"`

	Entity   string         `gorm:"column:entidad;size:40;index:idx_audit_entidad" json:"entidad"`
	EntityID *uint          `gorm:"column:entidad_id;index:idx_audit_entidad" json:"entidad_id"`
	Metadata datatypes.JSON `gorm:"column:detalle;type:jsonb" json:"detalle,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (AuditLog) TableName() string { return "audit_logs" }
