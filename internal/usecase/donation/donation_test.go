package donation

import (
	"context"
	"strconv"
	"testing"

	"github.com/BruksfildServices01/shelter-adoption/internal/auth"
	domain "github.com/BruksfildServices01/shelter-adoption/internal/domain/donation"
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/infra/memstore"
	"github.com/BruksfildServices01/shelter-adoption/internal/infra/payments"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
	"github.com/BruksfildServices01/shelter-adoption/internal/testutil"
)

type fakeCheckout struct {
	payments map[int]payments.Payment
	lookups  int
}

func (f *fakeCheckout) CreatePreference(_ context.Context, d *models.Donation) (payments.Preference, error) {
	id := strconv.FormatUint(uint64(d.ID), 10)
	return payments.Preference{ID: "pref-" + id, InitPoint: "https://mp.test/checkout/" + id}, nil
}

func (f *fakeCheckout) GetPayment(_ context.Context, id int) (payments.Payment, error) {
	f.lookups++
	return f.payments[id], nil
}

func TestDonationLifecycle(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	mp := &fakeCheckout{payments: map[int]payments.Payment{}}

	create := NewCreateDonation(s, mp)
	webhook := NewHandleWebhook(s, mp, &testutil.Audit{})

	if _, err := create.Execute(ctx, auth.Actor{}, Input{Amount: 5}); !httperr.IsBusiness(err, "donation_amount_too_low") {
		t.Fatalf("expected donation_amount_too_low, got %v", err)
	}

	out, err := create.Execute(ctx, auth.Actor{}, Input{DonorName: "Luis", Amount: 250})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if out.InitPoint == "" || out.Donation.PreferenceID == "" || out.Donation.Status != string(domain.StatusPending) {
		t.Fatalf("unexpected checkout %+v", out.Donation)
	}

	ref := strconv.FormatUint(uint64(out.Donation.ID), 10)
	mp.payments[77] = payments.Payment{ID: 77, Status: "approved", ExternalReference: ref, Amount: 250}

	d, err := webhook.Execute(ctx, "payment", "77")
	if err != nil {
		t.Fatalf("webhook: %v", err)
	}
	if d.Status != string(domain.StatusApproved) || d.PaymentID != "77" {
		t.Fatalf("unexpected donation %+v", d)
	}

	// reintentos de MercadoPago no cambian nada
	if d, err = webhook.Execute(ctx, "payment", "77"); err != nil || d.Status != string(domain.StatusApproved) {
		t.Fatalf("replay: %+v %v", d, err)
	}

	if d, err := webhook.Execute(ctx, "merchant_order", "1"); d != nil || err != nil {
		t.Fatalf("non-payment topics are ignored, got %+v %v", d, err)
	}
	if _, err := webhook.Execute(ctx, "payment", "abc"); !httperr.IsBusiness(err, "invalid_payment_id") {
		t.Fatalf("expected invalid_payment_id, got %v", err)
	}
}

func TestCreateDonation_PaymentsDisabled(t *testing.T) {
	s := memstore.New()
	uc := NewCreateDonation(s, payments.Disabled{})

	_, err := uc.Execute(context.Background(), auth.Actor{}, Input{Amount: 100})
	if !httperr.IsBusiness(err, "payments_not_configured") {
		t.Fatalf("expected payments_not_configured, got %v", err)
	}
}

func TestListDonations_AdminOnly(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	admin := testutil.Profile(t, s, "admin@example.com", auth.RoleAdmin)
	ana := testutil.Profile(t, s, "ana@example.com", auth.RoleAdopter)
	uc := NewListDonations(s)

	if _, err := uc.Execute(ctx, testutil.Actor(ana), domain.Filter{}); httperr.KindOf(err) != httperr.KindForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if _, err := uc.Execute(ctx, testutil.Actor(admin), domain.Filter{Status: "x"}); !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("expected invalid_status, got %v", err)
	}
}
