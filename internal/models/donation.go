package models

import "time"

type Donation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProfileID  *uint   `gorm:"index" json:"perfil_id"`
	DonorName  string  `gorm:"size:150" json:"nombre_donante"`
	DonorEmail string  `gorm:"size:150" json:"email_donante"`
	Amount     float64 `gorm:"column:monto;not null" json:"monto"`
	Currency   string  `gorm:"column:moneda;size:3;default:'MXN'" json:"moneda"`
	Message    string  `gorm:"column:mensaje;type:text" json:"mensaje"`

	Status       string `gorm:"column:estado;size:20;default:'pendiente';index" json:"estado"`
	PreferenceID string `gorm:"size:100;index" json:"preference_id"`
	PaymentID    string `gorm:"size:100;index" json:"payment_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Donation) TableName() string { return "donaciones" }
