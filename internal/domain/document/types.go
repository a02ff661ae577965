package document

import "github.com/BruksfildServices01/shelter-adoption/internal/models"

// Type es el tipo de documento requerido para adoptar.
type Type string

const (
	TypeIdentity     Type = "identificacion"
	TypeProofAddress Type = "comprobante_domicilio"
	TypeCURP         Type = "curp"
)

// RequiredTypes en el orden en que se muestran al adoptante.
var RequiredTypes = []Type{TypeIdentity, TypeProofAddress, TypeCURP}

func (t Type) Valid() bool {
	for _, r := range RequiredTypes {
		if t == r {
			return true
		}
	}
	return false
}

type Status string

const (
	StatusPending  Status = "pendiente"
	StatusApproved Status = "aprobado"
	StatusRejected Status = "rechazado"
)

// Readiness es el estado agregado de los documentos de un perfil.
type Readiness string

const (
	ReadinessNone     Readiness = "sin_documentos"
	ReadinessInReview Readiness = "en_revision"
	ReadinessApproved Readiness = "aprobado"
	ReadinessRejected Readiness = "rechazado"
)

// AggregateReadiness no guarda nada: se recalcula en cada lectura.
func AggregateReadiness(docs []models.Document) Readiness {
	if len(docs) == 0 {
		return ReadinessNone
	}

	allApproved := true
	for _, d := range docs {
		switch Status(d.Status) {
		case StatusRejected:
			return ReadinessRejected
		case StatusApproved:
		default:
			allApproved = false
		}
	}

	if allApproved {
		return ReadinessApproved
	}
	return ReadinessInReview
}

// MissingTypes lista los tipos requeridos que el perfil aún no sube.
func MissingTypes(docs []models.Document) []Type {
	have := make(map[Type]bool, len(docs))
	for _, d := range docs {
		have[Type(d.Type)] = true
	}

	var missing []Type
	for _, t := range RequiredTypes {
		if !have[t] {
			missing = append(missing, t)
		}
	}
	return missing
}
