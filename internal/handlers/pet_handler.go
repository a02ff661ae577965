package handlers

import (
	"github.com/gin-gonic/gin"

	domainPet "github.com/BruksfildServices01/shelter-adoption/internal/domain/pet"
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/httpresp"
	"github.com/BruksfildServices01/shelter-adoption/internal/middleware"
	ucPet "github.com/BruksfildServices01/shelter-adoption/internal/usecase/pet"
)

type PetHandler struct {
	listPublic      *ucPet.ListPublicPets
	get             *ucPet.GetPet
	list            *ucPet.ListPets
	create          *ucPet.CreatePet
	update          *ucPet.UpdatePet
	setAvailability *ucPet.SetAvailability
	uploadPhoto     *ucPet.UploadPhoto
}

func NewPetHandler(
	listPublic *ucPet.ListPublicPets,
	get *ucPet.GetPet,
	list *ucPet.ListPets,
	create *ucPet.CreatePet,
	update *ucPet.UpdatePet,
	setAvailability *ucPet.SetAvailability,
	uploadPhoto *ucPet.UploadPhoto,
) *PetHandler {
	return &PetHandler{
		listPublic:      listPublic,
		get:             get,
		list:            list,
		create:          create,
		update:          update,
		setAvailability: setAvailability,
		uploadPhoto:     uploadPhoto,
	}
}

type PetRequest struct {
	Name        string `json:"nombre"`
	Species     string `json:"especie"`
	Breed       string `json:"raza"`
	Sex         string `json:"sexo"`
	Size        string `json:"tamano"`
	AgeMonths   int    `json:"edad_meses"`
	Description string `json:"descripcion"`
}

func (r PetRequest) input() ucPet.Input {
	return ucPet.Input{
		Name:        r.Name,
		Species:     r.Species,
		Breed:       r.Breed,
		Sex:         r.Sex,
		Size:        r.Size,
		AgeMonths:   r.AgeMonths,
		Description: r.Description,
	}
}

type AvailabilityRequest struct {
	Available *bool `json:"disponible"`
}

func petFilter(c *gin.Context) domainPet.Filter {
	return domainPet.Filter{
		Species: c.Query("especie"),
		Sex:     c.Query("sexo"),
		Size:    c.Query("tamano"),
		Status:  c.Query("estado"),
		Query:   c.Query("q"),
		Limit:   queryInt(c, "limit", 0),
		Offset:  queryInt(c, "offset", 0),
	}
}

// ======================================================
// Público
// ======================================================

func (h *PetHandler) ListPublic(c *gin.Context) {
	pets, err := h.listPublic.Execute(c.Request.Context(), petFilter(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, pets)
}

func (h *PetHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	p, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, p)
}

// ======================================================
// Admin
// ======================================================

func (h *PetHandler) List(c *gin.Context) {
	pets, err := h.list.Execute(c.Request.Context(), middleware.Actor(c), petFilter(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, pets)
}

func (h *PetHandler) Create(c *gin.Context) {
	var req PetRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.create.Execute(c.Request.Context(), middleware.Actor(c), req.input())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, p)
}

func (h *PetHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req PetRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.update.Execute(c.Request.Context(), middleware.Actor(c), id, req.input())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *PetHandler) SetAvailability(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req AvailabilityRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Available == nil {
		httperr.FromError(c, httperr.Validation("invalid_request"))
		return
	}

	p, err := h.setAvailability.Execute(c.Request.Context(), middleware.Actor(c), id, *req.Available)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, p)
}

// UploadPhoto recibe multipart con el campo "foto".
func (h *PetHandler) UploadPhoto(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	file, err := formFile(c, "foto")
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	p, err := h.uploadPhoto.Execute(c.Request.Context(), middleware.Actor(c), id, file)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, p)
}
