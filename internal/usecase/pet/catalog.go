package pet

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/BruksfildServices01/shelter-adoption/internal/auth"
	domain "github.com/BruksfildServices01/shelter-adoption/internal/domain/pet"
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/infra/cache"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

func checkFilter(f *domain.Filter) error {
	if f.Species != "" && !domain.ValidSpecies(f.Species) {
		return httperr.Validation("invalid_species")
	}
	if f.Sex != "" && !domain.ValidSex(f.Sex) {
		return httperr.Validation("invalid_sex")
	}
	if f.Size != "" && !domain.ValidSize(f.Size) {
		return httperr.Validation("invalid_size")
	}
	if f.Status != "" && !domain.Status(f.Status).Valid() {
		return httperr.Validation("invalid_status")
	}
	if f.Offset < 0 {
		return httperr.Validation("invalid_offset")
	}
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	f.Query = strings.ToLower(strings.TrimSpace(f.Query))
	return nil
}

// ======================================================
// Público
// ======================================================

type GetPet struct {
	repo domain.Repository
}

func NewGetPet(repo domain.Repository) *GetPet {
	return &GetPet{repo: repo}
}

func (uc *GetPet) Execute(ctx context.Context, id uint) (*models.Pet, error) {
	p, err := uc.repo.GetPet(ctx, id)
	if err != nil {
		return nil, httperr.FromStore(err, "pet_not_found")
	}
	return p, nil
}

// ListPublicPets solo muestra mascotas publicables y cachea la respuesta.
// El store invalida el cache en cada escritura de mascotas.
type ListPublicPets struct {
	repo  domain.Repository
	cache cache.Listing
}

func NewListPublicPets(repo domain.Repository, c cache.Listing) *ListPublicPets {
	return &ListPublicPets{repo: repo, cache: c}
}

func (uc *ListPublicPets) Execute(ctx context.Context, f domain.Filter) ([]models.Pet, error) {
	f.Status = ""
	f.OnlyAvailable = true
	if err := checkFilter(&f); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s|%s|%s|%s|%d|%d", f.Species, f.Sex, f.Size, f.Query, f.Limit, f.Offset)
	if raw, ok := uc.cache.Get(ctx, key); ok {
		var cached []models.Pet
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
	}

	pets, err := uc.repo.ListPets(ctx, f)
	if err != nil {
		return nil, httperr.FromStore(err, "")
	}
	if pets == nil {
		pets = []models.Pet{}
	}

	if raw, err := json.Marshal(pets); err == nil {
		uc.cache.Set(ctx, key, raw)
	} else {
		log.Printf("pets cache encode error=%v", err)
	}
	return pets, nil
}

// ======================================================
// Admin
// ======================================================

type ListPets struct {
	repo domain.Repository
}

func NewListPets(repo domain.Repository) *ListPets {
	return &ListPets{repo: repo}
}

func (uc *ListPets) Execute(ctx context.Context, actor auth.Actor, f domain.Filter) ([]models.Pet, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if err := checkFilter(&f); err != nil {
		return nil, err
	}

	pets, err := uc.repo.ListPets(ctx, f)
	if err != nil {
		return nil, httperr.FromStore(err, "")
	}
	return pets, nil
}
