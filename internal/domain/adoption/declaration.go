package adoption

import (
	"strings"

	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
)

type HousingType string

const (
	HousingHouse     HousingType = "casa"
	HousingApartment HousingType = "departamento"
	HousingOther     HousingType = "otro"
)

type Space string

const (
	SpaceSmall  Space = "pequeno"
	SpaceMedium Space = "mediano"
	SpaceLarge  Space = "amplio"
)

type Status string

const (
	StatusActive    Status = "activa"
	StatusCompleted Status = "completada"
)

// HomeDeclaration es el formulario de idoneidad del hogar.
type HomeDeclaration struct {
	HousingType     HousingType
	AvailableSpace  Space
	HasOtherPets    bool
	OtherPetsDetail string
	Observations    string

	AcceptsFollowUps     bool
	AcceptsVetCare       bool
	AcceptsSterilization bool
	AcceptsNoAbandonment bool
}

// Validate corre antes de subir evidencias o tocar la base.
func (d HomeDeclaration) Validate() error {
	switch d.HousingType {
	case HousingHouse, HousingApartment, HousingOther:
	default:
		return httperr.Validation("invalid_housing_type")
	}

	switch d.AvailableSpace {
	case SpaceSmall, SpaceMedium, SpaceLarge:
	default:
		return httperr.Validation("invalid_available_space")
	}

	if d.HasOtherPets && strings.TrimSpace(d.OtherPetsDetail) == "" {
		return httperr.Validation("other_pets_detail_required")
	}

	if !d.AcceptsFollowUps || !d.AcceptsVetCare ||
		!d.AcceptsSterilization || !d.AcceptsNoAbandonment {
		return httperr.Validation("commitments_required")
	}

	return nil
}
