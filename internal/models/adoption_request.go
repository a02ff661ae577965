package models

import "time"

type AdoptionRequest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProfileID uint    `gorm:"not null;index" json:"perfil_id"`
	Profile   Profile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"perfil"`

	PetID uint `gorm:"not null;index" json:"mascota_id"`
	Pet   Pet  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"mascota"`

	Status          string `gorm:"column:estado;size:20;default:'pendiente';index" json:"estado"`
	Motive          string `gorm:"column:motivo;type:text" json:"motivo"`
	RejectionReason string `gorm:"column:motivo_rechazo;type:text" json:"motivo_rechazo"`

	DecidedBy   *uint      `json:"decidido_por"`
	DecidedAt   *time.Time `json:"decidido_en"`
	CancelledAt *time.Time `json:"cancelado_en"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AdoptionRequest) TableName() string { return "solicitudes_adopcion" }
