package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/httpresp"
	"github.com/BruksfildServices01/shelter-adoption/internal/middleware"
	ucDocument "github.com/BruksfildServices01/shelter-adoption/internal/usecase/document"
)

type DocumentHandler struct {
	upload    *ucDocument.UploadDocument
	list      *ucDocument.ListDocuments
	readiness *ucDocument.GetReadiness
	review    *ucDocument.ReviewDocument
}

func NewDocumentHandler(
	upload *ucDocument.UploadDocument,
	list *ucDocument.ListDocuments,
	readiness *ucDocument.GetReadiness,
	review *ucDocument.ReviewDocument,
) *DocumentHandler {
	return &DocumentHandler{
		upload:    upload,
		list:      list,
		readiness: readiness,
		review:    review,
	}
}

// DecisionRequest se usa en todas las resoluciones del admin.
type DecisionRequest struct {
	Decision string `json:"decision"`
	Reason   string `json:"motivo"`
}

// profileTarget: en /me es el propio perfil, en /admin viene en la ruta.
func profileTarget(c *gin.Context) (uint, bool) {
	if c.Param("id") == "" {
		return middleware.Actor(c).ProfileID, true
	}
	return idParam(c, "id")
}

// Upload recibe multipart con el campo "archivo"; el tipo va en la ruta.
func (h *DocumentHandler) Upload(c *gin.Context) {
	file, err := formFile(c, "archivo")
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	actor := middleware.Actor(c)
	doc, err := h.upload.Execute(c.Request.Context(), actor, actor.ProfileID, c.Param("tipo"), file)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, doc)
}

func (h *DocumentHandler) List(c *gin.Context) {
	profileID, ok := profileTarget(c)
	if !ok {
		return
	}

	docs, err := h.list.Execute(c.Request.Context(), middleware.Actor(c), profileID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, docs)
}

func (h *DocumentHandler) Readiness(c *gin.Context) {
	profileID, ok := profileTarget(c)
	if !ok {
		return
	}

	r, err := h.readiness.Execute(c.Request.Context(), middleware.Actor(c), profileID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, r)
}

func (h *DocumentHandler) Review(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req DecisionRequest
	if !bindJSON(c, &req) {
		return
	}

	doc, err := h.review.Execute(c.Request.Context(), middleware.Actor(c), id, req.Decision, req.Reason)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, doc)
}
