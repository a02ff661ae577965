package pet

import (
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

type Status string

const (
	StatusAvailable Status = "disponible"
	StatusReserved  Status = "reservada"
	StatusAdopted   Status = "adoptada"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusAdopted:
		return true
	}
	return false
}

// IsAvailable: solo se puede solicitar una mascota disponible y publicada.
func IsAvailable(p *models.Pet) bool {
	return Status(p.Status) == StatusAvailable && p.AvailableForAdoption
}

func Reserve(p *models.Pet) error {
	if !IsAvailable(p) {
		return httperr.Conflict("pet_not_available")
	}
	p.Status = string(StatusReserved)
	p.AvailableForAdoption = false
	return nil
}

// Release no valida el estado previo: cancelar o rechazar siempre libera.
func Release(p *models.Pet) {
	p.Status = string(StatusAvailable)
	p.AvailableForAdoption = true
}

func MarkAdopted(p *models.Pet) {
	p.Status = string(StatusAdopted)
	p.AvailableForAdoption = false
}
