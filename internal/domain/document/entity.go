package document

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

// Review aplica la decisión del admin. Un documento ya revisado puede
// revisarse de nuevo (el admin corrige su decisión).
func Review(d *models.Document, decision Status, reason string, reviewer uint, now time.Time) error {
	reason = strings.TrimSpace(reason)

	switch decision {
	case StatusApproved:
		d.RejectionReason = ""
	case StatusRejected:
		if reason == "" {
			return httperr.Validation("rejection_reason_required")
		}
		d.RejectionReason = reason
	default:
		return httperr.Validation("invalid_decision")
	}

	d.Status = string(decision)
	d.ReviewedBy = &reviewer
	d.ReviewedAt = &now
	return nil
}

// ResetForUpload deja el registro como recién subido.
func ResetForUpload(d *models.Document, key, url string) {
	d.Status = string(StatusPending)
	d.RejectionReason = ""
	d.FileKey = key
	d.FileURL = url
	d.ReviewedBy = nil
	d.ReviewedAt = nil
}
