package models

import "time"

// VisitAppointment es la cita presencial de convivencia ligada a una solicitud.
type VisitAppointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RequestID uint            `gorm:"not null;index" json:"solicitud_id"`
	Request   AdoptionRequest `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	ProfileID uint `gorm:"not null;index" json:"perfil_id"`
	PetID     uint `gorm:"not null;index" json:"mascota_id"`

	ScheduledAt time.Time `gorm:"not null;index" json:"fecha_hora"`
	Status      string    `gorm:"column:estado;size:20;default:'pendiente';index" json:"estado"`
	Reason      string    `gorm:"column:motivo;type:text" json:"motivo"`

	Attendance        *string    `gorm:"column:asistencia;size:30" json:"asistencia"`
	Interaction       *string    `gorm:"column:interaccion;size:30" json:"interaccion"`
	OutcomeRecordedBy *uint      `json:"resultado_registrado_por"`
	OutcomeRecordedAt *time.Time `json:"resultado_registrado_en"`

	ApprovedAt  *time.Time `json:"aprobada_en"`
	CancelledAt *time.Time `json:"cancelada_en"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (VisitAppointment) TableName() string { return "citas_adopcion" }

type VetAppointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PetID      uint  `gorm:"not null;index" json:"mascota_id"`
	Pet        Pet   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	AdoptionID *uint `gorm:"index" json:"adopcion_id"`
	ProfileID  uint  `gorm:"not null;index" json:"perfil_id"`

	ScheduledAt time.Time `gorm:"not null;index" json:"fecha_hora"`
	Status      string    `gorm:"column:estado;size:20;default:'pendiente';index" json:"estado"`
	Reason      string    `gorm:"column:motivo;type:text" json:"motivo"`
	VetNotes    string    `gorm:"column:notas_veterinario;type:text" json:"notas_veterinario"`

	ApprovedAt  *time.Time `json:"aprobada_en"`
	CancelledAt *time.Time `json:"cancelada_en"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (VetAppointment) TableName() string { return "citas_veterinarias" }
