package donation

import (
	"context"

	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

type Status string

const (
	StatusPending  Status = "pendiente"
	StatusApproved Status = "aprobada"
	StatusRejected Status = "rechazada"
)

// FromPaymentStatus traduce el estado de MercadoPago; "" = sin cambio.
func FromPaymentStatus(mp string) Status {
	switch mp {
	case "approved":
		return StatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return StatusRejected
	}
	return ""
}

// Apply es idempotente: reaplicar el mismo pago no cambia nada.
func Apply(d *models.Donation, paymentID string, next Status) bool {
	if next == "" {
		return false
	}
	if d.Status == string(next) && d.PaymentID == paymentID {
		return false
	}
	d.Status = string(next)
	d.PaymentID = paymentID
	return true
}

// MinAmount en MXN.
const MinAmount = 10.0

func ValidateAmount(amount float64) error {
	if amount < MinAmount {
		return httperr.Validation("donation_amount_too_low")
	}
	return nil
}

type Filter struct {
	Status string
	Limit  int
}

type Repository interface {
	CreateDonation(ctx context.Context, d *models.Donation) error
	GetDonation(ctx context.Context, id uint) (*models.Donation, error)
	UpdateDonation(ctx context.Context, d *models.Donation) error
	ListDonations(ctx context.Context, f Filter) ([]models.Donation, error)
}
