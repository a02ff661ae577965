package handlers

import (
	"github.com/gin-gonic/gin"

	domainAdoption "github.com/BruksfildServices01/shelter-adoption/internal/domain/adoption"
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/httpresp"
	"github.com/BruksfildServices01/shelter-adoption/internal/middleware"
	ucAdoption "github.com/BruksfildServices01/shelter-adoption/internal/usecase/adoption"
	ucFollowUp "github.com/BruksfildServices01/shelter-adoption/internal/usecase/followup"
)

type AdoptionHandler struct {
	submit *ucAdoption.SubmitAdoption
	get    *ucAdoption.GetAdoption
	list   *ucAdoption.ListAdoptions

	followUps        *ucFollowUp.ListFollowUps
	due              *ucFollowUp.ListDue
	submitEvidence   *ucFollowUp.SubmitEvidence
	completeFollowUp *ucFollowUp.CompleteFollowUp
}

func NewAdoptionHandler(
	submit *ucAdoption.SubmitAdoption,
	get *ucAdoption.GetAdoption,
	list *ucAdoption.ListAdoptions,
	followUps *ucFollowUp.ListFollowUps,
	due *ucFollowUp.ListDue,
	submitEvidence *ucFollowUp.SubmitEvidence,
	completeFollowUp *ucFollowUp.CompleteFollowUp,
) *AdoptionHandler {
	return &AdoptionHandler{
		submit:           submit,
		get:              get,
		list:             list,
		followUps:        followUps,
		due:              due,
		submitEvidence:   submitEvidence,
		completeFollowUp: completeFollowUp,
	}
}

// HomeForm llega como multipart junto con las fotos en "evidencias".
type HomeForm struct {
	HousingType     string `form:"tipo_vivienda"`
	AvailableSpace  string `form:"espacio_disponible"`
	HasOtherPets    bool   `form:"tiene_otras_mascotas"`
	OtherPetsDetail string `form:"detalle_otras_mascotas"`
	Observations    string `form:"observaciones"`

	AcceptsFollowUps     bool `form:"acepta_seguimiento"`
	AcceptsVetCare       bool `form:"acepta_atencion_veterinaria"`
	AcceptsSterilization bool `form:"acepta_esterilizacion"`
	AcceptsNoAbandonment bool `form:"acepta_no_abandono"`
}

func (f HomeForm) declaration() domainAdoption.HomeDeclaration {
	return domainAdoption.HomeDeclaration{
		HousingType:          domainAdoption.HousingType(f.HousingType),
		AvailableSpace:       domainAdoption.Space(f.AvailableSpace),
		HasOtherPets:         f.HasOtherPets,
		OtherPetsDetail:      f.OtherPetsDetail,
		Observations:         f.Observations,
		AcceptsFollowUps:     f.AcceptsFollowUps,
		AcceptsVetCare:       f.AcceptsVetCare,
		AcceptsSterilization: f.AcceptsSterilization,
		AcceptsNoAbandonment: f.AcceptsNoAbandonment,
	}
}

// ======================================================
// Adopción
// ======================================================

// Submit finaliza la adopción de la solicitud :id.
func (h *AdoptionHandler) Submit(c *gin.Context) {
	requestID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var form HomeForm
	if err := c.ShouldBind(&form); err != nil {
		httperr.FromError(c, httperr.Validation("invalid_request"))
		return
	}

	files, err := formFiles(c, "evidencias")
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	d, err := h.submit.Execute(c.Request.Context(), middleware.Actor(c), requestID, form.declaration(), files)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, d)
}

func (h *AdoptionHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	d, err := h.get.Execute(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, d)
}

func (h *AdoptionHandler) List(c *gin.Context) {
	f := domainAdoption.Filter{
		ProfileID: queryUint(c, "perfil_id"),
		PetID:     queryUint(c, "mascota_id"),
		Status:    c.Query("estado"),
	}

	list, err := h.list.Execute(c.Request.Context(), middleware.Actor(c), f)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, list)
}

// ======================================================
// Seguimiento
// ======================================================

func (h *AdoptionHandler) FollowUps(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	list, err := h.followUps.Execute(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, list)
}

// Due lista los seguimientos abiertos que vencen hasta mañana.
func (h *AdoptionHandler) Due(c *gin.Context) {
	list, err := h.due.Execute(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *AdoptionHandler) SubmitEvidence(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	files, err := formFiles(c, "evidencias")
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	v, err := h.submitEvidence.Execute(c.Request.Context(), middleware.Actor(c), id, files, c.PostForm("comentarios"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, v)
}

func (h *AdoptionHandler) CompleteFollowUp(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req NotesRequest
	if !bindJSON(c, &req) {
		return
	}

	v, err := h.completeFollowUp.Execute(c.Request.Context(), middleware.Actor(c), id, req.Notes)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, v)
}
