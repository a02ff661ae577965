package models

import "time"

type Pet struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"nombre"`
	Species     string `gorm:"column:especie;size:20;not null;index" json:"especie"`
	Breed       string `gorm:"column:raza;size:100" json:"raza"`
	Sex         string `gorm:"column:sexo;size:10" json:"sexo"`
	Size        string `gorm:"column:tamano;size:10;index" json:"tamano"`
	AgeMonths   int    `gorm:"column:edad_meses" json:"edad_meses"`
	Description string `gorm:"column:descripcion;type:text" json:"descripcion"`
	PhotoURL    string `gorm:"column:foto_url;size:512" json:"foto_url"`

	Status               string `gorm:"column:estado;size:20;default:'disponible';index" json:"estado"`
	AvailableForAdoption bool   `gorm:"column:disponible_adopcion;default:true" json:"disponible_adopcion"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Pet) TableName() string { return "mascotas" }
