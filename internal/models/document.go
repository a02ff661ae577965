package models

import "time"

// Document: un registro por (perfil, tipo); el re-upload pisa el anterior.
type Document struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProfileID uint   `gorm:"not null;uniqueIndex:uq_documento_perfil_tipo" json:"perfil_id"`
	Type      string `gorm:"column:tipo;size:30;not null;uniqueIndex:uq_documento_perfil_tipo" json:"tipo"`

	Status          string `gorm:"column:estado;size:20;default:'pendiente';index" json:"estado"`
	RejectionReason string `gorm:"column:motivo_rechazo;type:text" json:"motivo_rechazo"`

	FileKey string `gorm:"size:512;not null" json:"-"`
	FileURL string `gorm:"size:512;not null" json:"archivo_url"`

	ReviewedBy *uint      `json:"revisado_por"`
	ReviewedAt *time.Time `json:"revisado_en"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Document) TableName() string { return "documentos" }
