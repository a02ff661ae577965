package adoption

import (
	"time"

	"gorm.io/datatypes"

	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

// Build arma la adopción a partir de la solicitud; no persiste.
func Build(req *models.AdoptionRequest, d HomeDeclaration, evidence datatypes.JSON, now time.Time) *models.Adoption {
	if len(evidence) == 0 {
		evidence = datatypes.JSON("[]")
	}

	return &models.Adoption{
		RequestID: req.ID,
		ProfileID: req.ProfileID,
		PetID:     req.PetID,
		AdoptedAt: now,

		HousingType:     string(d.HousingType),
		AvailableSpace:  string(d.AvailableSpace),
		HasOtherPets:    d.HasOtherPets,
		OtherPetsDetail: d.OtherPetsDetail,
		HomeEvidence:    evidence,

		AcceptsFollowUps:     d.AcceptsFollowUps,
		AcceptsVetCare:       d.AcceptsVetCare,
		AcceptsSterilization: d.AcceptsSterilization,
		AcceptsNoAbandonment: d.AcceptsNoAbandonment,

		Observations: d.Observations,
		Status:       string(StatusActive),
	}
}
