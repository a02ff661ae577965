package donation

import (
	"context"
	"errors"
	"net/mail"
	"strconv"
	"strings"

	"github.com/BruksfildServices01/shelter-adoption/internal/audit"
	"github.com/BruksfildServices01/shelter-adoption/internal/auth"
	domain "github.com/BruksfildServices01/shelter-adoption/internal/domain/donation"
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/infra/payments"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

type Input struct {
	DonorName  string
	DonorEmail string
	Amount     float64
	Message    string
}

type Checkout struct {
	Donation  *models.Donation `json:"donacion"`
	InitPoint string           `json:"init_point"`
}

// ======================================================
// CreateDonation
// ======================================================

type CreateDonation struct {
	repo     domain.Repository
	checkout payments.Checkout
}

func NewCreateDonation(repo domain.Repository, checkout payments.Checkout) *CreateDonation {
	return &CreateDonation{repo: repo, checkout: checkout}
}

// Execute acepta donantes anónimos; con sesión se liga al perfil.
func (uc *CreateDonation) Execute(ctx context.Context, actor auth.Actor, in Input) (*Checkout, error) {
	if err := domain.ValidateAmount(in.Amount); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(in.DonorEmail))
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, httperr.Validation("invalid_email")
		}
	}

	d := &models.Donation{
		DonorName:  strings.TrimSpace(in.DonorName),
		DonorEmail: email,
		Amount:     in.Amount,
		Currency:   "MXN",
		Message:    strings.TrimSpace(in.Message),
		Status:     string(domain.StatusPending),
	}
	if actor.ProfileID != 0 {
		id := actor.ProfileID
		d.ProfileID = &id
	}

	if err := uc.repo.CreateDonation(ctx, d); err != nil {
		return nil, httperr.FromStore(err, "")
	}

	pref, err := uc.checkout.CreatePreference(ctx, d)
	if err != nil {
		if errors.Is(err, payments.ErrNotConfigured) {
			return nil, httperr.Upstream("payments_not_configured", err)
		}
		return nil, httperr.Upstream("payment_provider_failure", err)
	}

	d.PreferenceID = pref.ID
	if err := uc.repo.UpdateDonation(ctx, d); err != nil {
		return nil, httperr.FromStore(err, "")
	}

	return &Checkout{Donation: d, InitPoint: pref.InitPoint}, nil
}

// ======================================================
// HandleWebhook
// ======================================================

// HandleWebhook no confía en el cuerpo de la notificación: vuelve a
// consultar el pago a MercadoPago y aplica ese estado.
type HandleWebhook struct {
	repo     domain.Repository
	checkout payments.Checkout
	audit    audit.Sink
}

func NewHandleWebhook(repo domain.Repository, checkout payments.Checkout, audit audit.Sink) *HandleWebhook {
	return &HandleWebhook{repo: repo, checkout: checkout, audit: audit}
}

// Execute devuelve (nil, nil) para avisos que no son de pagos.
func (uc *HandleWebhook) Execute(ctx context.Context, topic, paymentID string) (*models.Donation, error) {
	if topic != "payment" {
		return nil, nil
	}

	id, err := strconv.Atoi(strings.TrimSpace(paymentID))
	if err != nil || id <= 0 {
		return nil, httperr.Validation("invalid_payment_id")
	}

	p, err := uc.checkout.GetPayment(ctx, id)
	if err != nil {
		return nil, httperr.Upstream("payment_provider_failure", err)
	}

	ref, err := strconv.ParseUint(p.ExternalReference, 10, 64)
	if err != nil {
		return nil, httperr.NotFound("donation_not_found")
	}

	d, err := uc.repo.GetDonation(ctx, uint(ref))
	if err != nil {
		return nil, httperr.FromStore(err, "donation_not_found")
	}

	if !domain.Apply(d, strconv.Itoa(p.ID), domain.FromPaymentStatus(p.Status)) {
		return d, nil
	}

	if err := uc.repo.UpdateDonation(ctx, d); err != nil {
		return nil, httperr.FromStore(err, "")
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "donation_status_changed",
		Entity:   "donation",
		EntityID: &d.ID,
		Metadata: map[string]any{"estado": d.Status, "payment_id": d.PaymentID},
	})
	return d, nil
}

// ======================================================
// ListDonations
// ======================================================

type ListDonations struct {
	repo domain.Repository
}

func NewListDonations(repo domain.Repository) *ListDonations {
	return &ListDonations{repo: repo}
}

func (uc *ListDonations) Execute(ctx context.Context, actor auth.Actor, f domain.Filter) ([]models.Donation, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}
	switch domain.Status(f.Status) {
	case "", domain.StatusPending, domain.StatusApproved, domain.StatusRejected:
	default:
		return nil, httperr.Validation("invalid_status")
	}
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 50
	}

	out, err := uc.repo.ListDonations(ctx, f)
	if err != nil {
		return nil, httperr.FromStore(err, "")
	}
	return out, nil
}
