package payments

import (
	"context"
	"errors"
	"strconv"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

// Checkout es el colaborador de pagos de donaciones.
type Checkout interface {
	CreatePreference(ctx context.Context, d *models.Donation) (Preference, error)
	GetPayment(ctx context.Context, paymentID int) (Payment, error)
}

type Preference struct {
	ID        string
	InitPoint string
}

type Payment struct {
	ID                int
	Status            string
	ExternalReference string
	Amount            float64
}

var ErrNotConfigured = errors.New("payments: MERCADOPAGO_ACCESS_TOKEN not set")

type Options struct {
	AccessToken     string
	NotificationURL string
	BackURL         string
}

type MercadoPago struct {
	preferences preference.Client
	payments    payment.Client
	opts        Options
}

// NewMercadoPago devuelve Disabled si no hay token.
func NewMercadoPago(opts Options) (Checkout, error) {
	if opts.AccessToken == "" {
		return Disabled{}, nil
	}

	cfg, err := config.New(opts.AccessToken)
	if err != nil {
		return nil, err
	}

	return &MercadoPago{
		preferences: preference.NewClient(cfg),
		payments:    payment.NewClient(cfg),
		opts:        opts,
	}, nil
}

func (m *MercadoPago) CreatePreference(ctx context.Context, d *models.Donation) (Preference, error) {
	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:         "donacion-" + strconv.FormatUint(uint64(d.ID), 10),
				Title:      "Donación al refugio",
				Quantity:   1,
				UnitPrice:  d.Amount,
				CurrencyID: d.Currency,
			},
		},
		ExternalReference: strconv.FormatUint(uint64(d.ID), 10),
		NotificationURL:   m.opts.NotificationURL,
	}
	if d.DonorEmail != "" {
		req.Payer = &preference.PayerRequest{Name: d.DonorName, Email: d.DonorEmail}
	}
	if m.opts.BackURL != "" {
		req.BackURLs = &preference.BackURLsRequest{
			Success: m.opts.BackURL + "?estado=aprobada",
			Pending: m.opts.BackURL + "?estado=pendiente",
			Failure: m.opts.BackURL + "?estado=rechazada",
		}
		req.AutoReturn = "approved"
	}

	res, err := m.preferences.Create(ctx, req)
	if err != nil {
		return Preference{}, err
	}
	return Preference{ID: res.ID, InitPoint: res.InitPoint}, nil
}

func (m *MercadoPago) GetPayment(ctx context.Context, paymentID int) (Payment, error) {
	res, err := m.payments.Get(ctx, paymentID)
	if err != nil {
		return Payment{}, err
	}
	return Payment{
		ID:                res.ID,
		Status:            res.Status,
		ExternalReference: res.ExternalReference,
		Amount:            res.TransactionAmount,
	}, nil
}

// Disabled responde ErrNotConfigured; el resto de la API sigue funcionando.
type Disabled struct{}

func (Disabled) CreatePreference(context.Context, *models.Donation) (Preference, error) {
	return Preference{}, ErrNotConfigured
}

func (Disabled) GetPayment(context.Context, int) (Payment, error) {
	return Payment{}, ErrNotConfigured
}
