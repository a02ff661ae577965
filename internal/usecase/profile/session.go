package profile

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/shelter-adoption/internal/audit"
	"github.com/BruksfildServices01/shelter-adoption/internal/auth"
	domain "github.com/BruksfildServices01/shelter-adoption/internal/domain/profile"
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
	"github.com/BruksfildServices01/shelter-adoption/internal/notify"
)

const resetTokenTTL = time.Hour

// ======================================================
// ConfirmEmail
// ======================================================

type ConfirmEmail struct {
	repo domain.Repository
}

func NewConfirmEmail(repo domain.Repository) *ConfirmEmail {
	return &ConfirmEmail{repo: repo}
}

func (uc *ConfirmEmail) Execute(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return httperr.Validation("invalid_token")
	}

	p, err := uc.repo.GetProfileByConfirmToken(ctx, auth.HashToken(token))
	if err != nil {
		if httperr.IsRecordNotFound(err) {
			return httperr.Validation("invalid_token")
		}
		return httperr.FromStore(err, "")
	}

	p.EmailConfirmed = true
	p.ConfirmTokenHash = ""
	if err := uc.repo.UpdateProfile(ctx, p); err != nil {
		return httperr.FromStore(err, "")
	}
	return nil
}

// ======================================================
// Login
// ======================================================

type Login struct {
	repo   domain.Repository
	secret string
	now    func() time.Time
}

func NewLogin(repo domain.Repository, secret string) *Login {
	return &Login{repo: repo, secret: secret, now: time.Now}
}

func (uc *Login) Execute(ctx context.Context, email, password string) (string, *models.Profile, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, httperr.Validation("credentials_required")
	}

	p, err := uc.repo.GetProfileByEmail(ctx, email)
	if err != nil {
		if httperr.IsRecordNotFound(err) {
			return "", nil, httperr.Unauthenticated("invalid_credentials")
		}
		return "", nil, httperr.FromStore(err, "")
	}

	if err := auth.CheckPassword(password, p.PasswordHash); err != nil {
		return "", nil, httperr.Unauthenticated("invalid_credentials")
	}
	if !p.Active {
		return "", nil, httperr.Forbidden("profile_inactive")
	}
	if !p.EmailConfirmed {
		return "", nil, httperr.Forbidden("email_not_confirmed")
	}

	token, err := auth.GenerateToken(uc.secret, p.ID, auth.Role(p.Role), uc.now())
	if err != nil {
		return "", nil, err
	}
	return token, p, nil
}

// ======================================================
// Password reset
// ======================================================

type RequestPasswordReset struct {
	repo       domain.Repository
	notifier   notify.Notifier
	audit      audit.Sink
	appBaseURL string
	now        func() time.Time
}

func NewRequestPasswordReset(repo domain.Repository, notifier notify.Notifier, audit audit.Sink, appBaseURL string) *RequestPasswordReset {
	return &RequestPasswordReset{
		repo:       repo,
		notifier:   notifier,
		audit:      audit,
		appBaseURL: strings.TrimRight(appBaseURL, "/"),
		now:        time.Now,
	}
}

// Execute responde igual exista o no el correo.
func (uc *RequestPasswordReset) Execute(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return httperr.Validation("invalid_email")
	}

	p, err := uc.repo.GetProfileByEmail(ctx, email)
	if err != nil {
		if httperr.IsRecordNotFound(err) {
			return nil
		}
		return httperr.FromStore(err, "")
	}
	if !p.Active {
		return nil
	}

	token, hash := auth.NewOpaqueToken()
	expiry := uc.now().Add(resetTokenTTL)
	p.ResetTokenHash = hash
	p.ResetTokenExpiry = &expiry

	if err := uc.repo.UpdateProfile(ctx, p); err != nil {
		return httperr.FromStore(err, "")
	}

	uc.notifier.Notify(notify.KindPasswordReset, p.Email, notify.Data{
		"Name": p.FirstName,
		"Link": uc.appBaseURL + "/restablecer?token=" + token,
	})

	uc.audit.Dispatch(audit.Event{
		ActorID:  &p.ID,
		Action:   "password_reset_requested",
		Entity:   "profile",
		EntityID: &p.ID,
	})
	return nil
}

type ResetPassword struct {
	repo domain.Repository
	now  func() time.Time
}

func NewResetPassword(repo domain.Repository) *ResetPassword {
	return &ResetPassword{repo: repo, now: time.Now}
}

func (uc *ResetPassword) Execute(ctx context.Context, token, password string) error {
	if err := auth.ValidatePassword(password); err != nil {
		return err
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return httperr.Validation("invalid_token")
	}

	p, err := uc.repo.GetProfileByResetToken(ctx, auth.HashToken(token))
	if err != nil {
		if httperr.IsRecordNotFound(err) {
			return httperr.Validation("invalid_token")
		}
		return httperr.FromStore(err, "")
	}
	if p.ResetTokenExpiry == nil || uc.now().After(*p.ResetTokenExpiry) {
		return httperr.Validation("invalid_token")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	p.PasswordHash = hash
	p.ResetTokenHash = ""
	p.ResetTokenExpiry = nil

	if err := uc.repo.UpdateProfile(ctx, p); err != nil {
		return httperr.FromStore(err, "")
	}
	return nil
}
