package models

import "time"

type Profile struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string `gorm:"size:100;not null" json:"nombre"`
	LastName  string `gorm:"size:150" json:"apellidos"`
	CURP      string `gorm:"column:curp;size:18;index" json:"curp"`
	Email     string `gorm:"size:150;uniqueIndex;not null" json:"email"`
	Phone     string `gorm:"size:20" json:"telefono"`
	Address   string `gorm:"size:255" json:"direccion"`

	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"column:rol;size:20;default:'adoptante';index" json:"rol"`
	Active       bool   `gorm:"column:activo;default:true" json:"activo"`

	EmailConfirmed   bool       `json:"email_confirmado"`
	ConfirmTokenHash string     `gorm:"size:64;index" json:"-"`
	ResetTokenHash   string     `gorm:"size:64;index" json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Profile) TableName() string { return "perfiles" }

func (p Profile) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
