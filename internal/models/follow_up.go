package models

import (
	"time"

	"gorm.io/datatypes"
)

type FollowUp struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AdoptionID uint      `gorm:"not null;uniqueIndex:uq_seguimiento_adopcion_etapa" json:"adopcion_id"`
	Checkpoint string    `gorm:"column:etapa;size:20;not null;uniqueIndex:uq_seguimiento_adopcion_etapa" json:"etapa"`
	TargetDate time.Time `gorm:"column:fecha_objetivo;not null;index" json:"fecha_objetivo"`

	// Solo se guarda pendiente/completado; "activo" se deriva al leer.
	Status string `gorm:"column:estado;size:20;default:'pendiente'" json:"-"`

	Evidence    datatypes.JSON `gorm:"column:evidencias;type:jsonb;not null;default:'[]'" json:"evidencias"`
	Comments    string         `gorm:"column:comentarios;type:text" json:"comentarios"`
	SubmittedAt *time.Time     `gorm:"column:enviado_en" json:"enviado_en"`
	CompletedBy *uint          `json:"completado_por"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (FollowUp) TableName() string { return "seguimientos" }
