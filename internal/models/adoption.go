package models

import (
	"time"

	"gorm.io/datatypes"
)

type Adoption struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RequestID uint `gorm:"not null;uniqueIndex:uq_adopcion_solicitud" json:"solicitud_id"`
	ProfileID uint `gorm:"not null;index" json:"perfil_id"`
	PetID     uint `gorm:"not null;index" json:"mascota_id"`
	Pet       Pet  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"mascota"`

	AdoptedAt time.Time `gorm:"column:fecha_adopcion;not null" json:"fecha_adopcion"`

	HousingType     string         `gorm:"column:tipo_vivienda;size:20" json:"tipo_vivienda"`
	AvailableSpace  string         `gorm:"column:espacio_disponible;size:20" json:"espacio_disponible"`
	HasOtherPets    bool           `gorm:"column:otras_mascotas" json:"otras_mascotas"`
	OtherPetsDetail string         `gorm:"column:detalle_otras_mascotas;type:text" json:"detalle_otras_mascotas"`
	HomeEvidence    datatypes.JSON `gorm:"column:evidencias_hogar;type:jsonb;not null;default:'[]'" json:"evidencias_hogar"`

	AcceptsFollowUps     bool `gorm:"column:compromiso_seguimiento" json:"compromiso_seguimiento"`
	AcceptsVetCare       bool `gorm:"column:compromiso_veterinario" json:"compromiso_veterinario"`
	AcceptsSterilization bool `gorm:"column:compromiso_esterilizacion" json:"compromiso_esterilizacion"`
	AcceptsNoAbandonment bool `gorm:"column:compromiso_no_abandono" json:"compromiso_no_abandono"`

	Observations string `gorm:"column:observaciones;type:text" json:"observaciones"`
	Status       string `gorm:"column:estado;size:20;default:'activa';index" json:"estado"`

	FollowUps []FollowUp `gorm:"foreignKey:AdoptionID" json:"seguimientos,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Adoption) TableName() string { return "adopciones" }
