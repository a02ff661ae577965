package handlers

import (
	"github.com/gin-gonic/gin"

	domainRequest "github.com/BruksfildServices01/shelter-adoption/internal/domain/adoptionrequest"
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/httpresp"
	"github.com/BruksfildServices01/shelter-adoption/internal/middleware"
	ucRequest "github.com/BruksfildServices01/shelter-adoption/internal/usecase/adoptionrequest"
)

type RequestHandler struct {
	create *ucRequest.CreateRequest
	cancel *ucRequest.CancelRequest
	decide *ucRequest.DecideRequest
	get    *ucRequest.GetRequest
	list   *ucRequest.ListRequests
}

func NewRequestHandler(
	create *ucRequest.CreateRequest,
	cancel *ucRequest.CancelRequest,
	decide *ucRequest.DecideRequest,
	get *ucRequest.GetRequest,
	list *ucRequest.ListRequests,
) *RequestHandler {
	return &RequestHandler{
		create: create,
		cancel: cancel,
		decide: decide,
		get:    get,
		list:   list,
	}
}

type CreateRequestRequest struct {
	PetID  uint   `json:"mascota_id"`
	Motive string `json:"motivo"`
}

func (h *RequestHandler) Create(c *gin.Context) {
	var req CreateRequestRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.PetID == 0 {
		httperr.FromError(c, httperr.Validation("invalid_request"))
		return
	}

	r, err := h.create.Execute(c.Request.Context(), middleware.Actor(c), req.PetID, req.Motive)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, r)
}

func (h *RequestHandler) Cancel(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	r, err := h.cancel.Execute(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, r)
}

func (h *RequestHandler) Decide(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req DecisionRequest
	if !bindJSON(c, &req) {
		return
	}

	r, err := h.decide.Execute(c.Request.Context(), middleware.Actor(c), id, req.Decision, req.Reason)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, r)
}

func (h *RequestHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	r, err := h.get.Execute(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, r)
}

// List: el adoptante solo ve las suyas (lo fuerza el caso de uso).
func (h *RequestHandler) List(c *gin.Context) {
	f := domainRequest.Filter{
		ProfileID: queryUint(c, "perfil_id"),
		PetID:     queryUint(c, "mascota_id"),
		Statuses:  queryList(c, "estado"),
	}

	list, err := h.list.Execute(c.Request.Context(), middleware.Actor(c), f)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, list)
}
