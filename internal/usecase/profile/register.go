package profile

import (
	"context"
	"net/mail"
	"strings"

	"github.com/BruksfildServices01/shelter-adoption/internal/audit"
	"github.com/BruksfildServices01/shelter-adoption/internal/auth"
	domain "github.com/BruksfildServices01/shelter-adoption/internal/domain/profile"
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
	"github.com/BruksfildServices01/shelter-adoption/internal/notify"
	"github.com/BruksfildServices01/shelter-adoption/internal/validators"
)

type RegisterInput struct {
	FirstName string
	LastName  string
	CURP      string
	Email     string
	Phone     string
	Address   string
	Password  string
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", httperr.Validation("invalid_email")
	}
	return email, nil
}

type Register struct {
	repo        domain.Repository
	notifier    notify.Notifier
	audit       audit.Sink
	appBaseURL  string
	checkDomain func(ctx context.Context, email string) bool
}

func NewRegister(repo domain.Repository, notifier notify.Notifier, audit audit.Sink, appBaseURL string) *Register {
	return &Register{
		repo:        repo,
		notifier:    notifier,
		audit:       audit,
		appBaseURL:  strings.TrimRight(appBaseURL, "/"),
		checkDomain: validators.EmailDomainResolves,
	}
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*models.Profile, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	if in.FirstName == "" {
		return nil, httperr.Validation("name_required")
	}

	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if !uc.checkDomain(ctx, email) {
		return nil, httperr.Validation("invalid_email_domain")
	}

	curp := validators.NormalizeCURP(in.CURP)
	if !validators.IsCURPValid(curp) {
		return nil, httperr.Validation("invalid_curp")
	}

	if err := auth.ValidatePassword(in.Password); err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetProfileByEmail(ctx, email); err == nil {
		return nil, httperr.Conflict("email_already_registered")
	} else if !httperr.IsRecordNotFound(err) {
		return nil, httperr.FromStore(err, "")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	token, tokenHash := auth.NewOpaqueToken()

	p := &models.Profile{
		FirstName:        in.FirstName,
		LastName:         strings.TrimSpace(in.LastName),
		CURP:             curp,
		Email:            email,
		Phone:            strings.TrimSpace(in.Phone),
		Address:          strings.TrimSpace(in.Address),
		PasswordHash:     hash,
		Role:             string(auth.RoleAdopter),
		Active:           true,
		ConfirmTokenHash: tokenHash,
	}

	// email y CURP tienen índice único
	if err := uc.repo.CreateProfile(ctx, p); err != nil {
		return nil, httperr.FromStore(err, "", "profile_already_exists")
	}

	uc.notifier.Notify(notify.KindRegistrationConfirmation, p.Email, notify.Data{
		"Name": p.FirstName,
		"Link": uc.appBaseURL + "/confirmar?token=" + token,
	})

	uc.audit.Dispatch(audit.Event{
		ActorID:  &p.ID,
		Action:   "profile_registered",
		Entity:   "profile",
		EntityID: &p.ID,
	})

	return p, nil
}

// CreateAdmin lo usa el CLI; el admin queda confirmado y sin CURP.
type CreateAdmin struct {
	repo domain.Repository
}

func NewCreateAdmin(repo domain.Repository) *CreateAdmin {
	return &CreateAdmin{repo: repo}
}

func (uc *CreateAdmin) Execute(ctx context.Context, name, email, password string) (*models.Profile, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if err := auth.ValidatePassword(password); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Administrador"
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	p := &models.Profile{
		FirstName:      name,
		Email:          email,
		PasswordHash:   hash,
		Role:           string(auth.RoleAdmin),
		Active:         true,
		EmailConfirmed: true,
	}
	if err := uc.repo.CreateProfile(ctx, p); err != nil {
		return nil, httperr.FromStore(err, "", "profile_already_exists")
	}
	return p, nil
}
