package pet

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/shelter-adoption/internal/audit"
	"github.com/BruksfildServices01/shelter-adoption/internal/auth"
	domain "github.com/BruksfildServices01/shelter-adoption/internal/domain/pet"
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/infra/imaging"
	"github.com/BruksfildServices01/shelter-adoption/internal/infra/storage"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

type Input struct {
	Name        string
	Species     string
	Breed       string
	Sex         string
	Size        string
	AgeMonths   int
	Description string
}

func (in *Input) normalize() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Breed = strings.TrimSpace(in.Breed)
	in.Description = strings.TrimSpace(in.Description)

	if in.Name == "" {
		return httperr.Validation("pet_name_required")
	}
	if !domain.ValidSpecies(in.Species) {
		return httperr.Validation("invalid_species")
	}
	if in.Sex != "" && !domain.ValidSex(in.Sex) {
		return httperr.Validation("invalid_sex")
	}
	if in.Size != "" && !domain.ValidSize(in.Size) {
		return httperr.Validation("invalid_size")
	}
	if in.AgeMonths < 0 {
		return httperr.Validation("invalid_age")
	}
	return nil
}

func (in Input) apply(p *models.Pet) {
	p.Name = in.Name
	p.Species = in.Species
	p.Breed = in.Breed
	p.Sex = in.Sex
	p.Size = in.Size
	p.AgeMonths = in.AgeMonths
	p.Description = in.Description
}

// ======================================================
// CreatePet / UpdatePet
// ======================================================

type CreatePet struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewCreatePet(repo domain.Repository, audit audit.Sink) *CreatePet {
	return &CreatePet{repo: repo, audit: audit}
}

func (uc *CreatePet) Execute(ctx context.Context, actor auth.Actor, in Input) (*models.Pet, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if err := in.normalize(); err != nil {
		return nil, err
	}

	p := &models.Pet{
		Status:               string(domain.StatusAvailable),
		AvailableForAdoption: true,
	}
	in.apply(p)

	if err := uc.repo.CreatePet(ctx, p); err != nil {
		return nil, httperr.FromStore(err, "")
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actor.ProfileID,
		Action:   "pet_created",
		Entity:   "pet",
		EntityID: &p.ID,
	})
	return p, nil
}

type UpdatePet struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewUpdatePet(repo domain.Repository, audit audit.Sink) *UpdatePet {
	return &UpdatePet{repo: repo, audit: audit}
}

// Execute edita la ficha; el estado solo cambia por el ciclo de adopción.
func (uc *UpdatePet) Execute(ctx context.Context, actor auth.Actor, id uint, in Input) (*models.Pet, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if err := in.normalize(); err != nil {
		return nil, err
	}

	p, err := uc.repo.GetPet(ctx, id)
	if err != nil {
		return nil, httperr.FromStore(err, "pet_not_found")
	}
	in.apply(p)

	if err := uc.repo.UpdatePet(ctx, p); err != nil {
		return nil, httperr.FromStore(err, "pet_not_found")
	}
	// el estado pudo cambiar entre la lectura y la escritura
	if p, err = uc.repo.GetPet(ctx, id); err != nil {
		return nil, httperr.FromStore(err, "pet_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actor.ProfileID,
		Action:   "pet_updated",
		Entity:   "pet",
		EntityID: &p.ID,
	})
	return p, nil
}

// ======================================================
// SetAvailability
// ======================================================

// SetAvailability pausa o reanuda la publicación de una mascota disponible
// (p. ej. tratamiento médico). Reservadas y adoptadas no se tocan.
type SetAvailability struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewSetAvailability(repo domain.Repository, audit audit.Sink) *SetAvailability {
	return &SetAvailability{repo: repo, audit: audit}
}

func (uc *SetAvailability) Execute(ctx context.Context, actor auth.Actor, id uint, available bool) (*models.Pet, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	p, err := uc.repo.GetPet(ctx, id)
	if err != nil {
		return nil, httperr.FromStore(err, "pet_not_found")
	}
	if domain.Status(p.Status) != domain.StatusAvailable {
		return nil, httperr.Conflict("pet_status_locked")
	}

	if err := uc.repo.SetPetStatus(ctx, p.ID, p.Status, available); err != nil {
		return nil, httperr.FromStore(err, "pet_not_found")
	}
	p.AvailableForAdoption = available

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actor.ProfileID,
		Action:   "pet_availability_changed",
		Entity:   "pet",
		EntityID: &p.ID,
		Metadata: map[string]any{"disponible_adopcion": available},
	})
	return p, nil
}

// ======================================================
// UploadPhoto
// ======================================================

type UploadPhoto struct {
	repo   domain.Repository
	bucket storage.Bucket
}

func NewUploadPhoto(repo domain.Repository, bucket storage.Bucket) *UploadPhoto {
	return &UploadPhoto{repo: repo, bucket: bucket}
}

func (uc *UploadPhoto) Execute(ctx context.Context, actor auth.Actor, id uint, file storage.File) (*models.Pet, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if _, _, err := file.Check(storage.ImageExtensions); err != nil {
		return nil, err
	}

	p, err := uc.repo.GetPet(ctx, id)
	if err != nil {
		return nil, httperr.FromStore(err, "pet_not_found")
	}

	data, err := imaging.ToWebP(file.Data, imaging.MaxSide)
	if err != nil {
		return nil, err
	}

	url, err := uc.bucket.Upload(ctx, storage.PetPhotoKey(p.ID), data, "image/webp")
	if err != nil {
		return nil, httperr.Upstream("storage_failure", err)
	}

	p.PhotoURL = url
	if err := uc.repo.UpdatePet(ctx, p); err != nil {
		return nil, httperr.FromStore(err, "pet_not_found")
	}

	updated, err := uc.repo.GetPet(ctx, p.ID)
	if err != nil {
		return nil, httperr.FromStore(err, "pet_not_found")
	}
	return updated, nil
}
