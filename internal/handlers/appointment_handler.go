package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/httpresp"
	"github.com/BruksfildServices01/shelter-adoption/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/shelter-adoption/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	scheduleVisit *ucAppointment.ScheduleVisit
	decideVisit   *ucAppointment.DecideVisit
	recordOutcome *ucAppointment.RecordOutcome
	listVisits    *ucAppointment.ListVisits

	scheduleVet *ucAppointment.ScheduleVet
	decideVet   *ucAppointment.DecideVet
	completeVet *ucAppointment.CompleteVet
	listVet     *ucAppointment.ListVet

	loc *time.Location
}

func NewAppointmentHandler(
	scheduleVisit *ucAppointment.ScheduleVisit,
	decideVisit *ucAppointment.DecideVisit,
	recordOutcome *ucAppointment.RecordOutcome,
	listVisits *ucAppointment.ListVisits,
	scheduleVet *ucAppointment.ScheduleVet,
	decideVet *ucAppointment.DecideVet,
	completeVet *ucAppointment.CompleteVet,
	listVet *ucAppointment.ListVet,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		scheduleVisit: scheduleVisit,
		decideVisit:   decideVisit,
		recordOutcome: recordOutcome,
		listVisits:    listVisits,
		scheduleVet:   scheduleVet,
		decideVet:     decideVet,
		completeVet:   completeVet,
		listVet:       listVet,
		loc:           loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// Fecha y hora llegan separadas y se interpretan en la zona del refugio.
type ScheduleRequest struct {
	Date   string `json:"fecha"`
	Time   string `json:"hora"`
	Reason string `json:"motivo"`
}

type VetRequest struct {
	ScheduleRequest
	PetID      uint  `json:"mascota_id"`
	AdoptionID *uint `json:"adopcion_id"`
}

type OutcomeRequest struct {
	Attendance  string `json:"asistencia"`
	Interaction string `json:"interaccion"`
}

type NotesRequest struct {
	Notes string `json:"notas"`
}

func (h *AppointmentHandler) query(c *gin.Context) ucAppointment.Query {
	return ucAppointment.Query{
		RequestID: queryUint(c, "solicitud_id"),
		ProfileID: queryUint(c, "perfil_id"),
		PetID:     queryUint(c, "mascota_id"),
		Statuses:  queryList(c, "estado"),
		Year:      queryInt(c, "anio", 0),
		Month:     queryInt(c, "mes", 0),
	}
}

// ======================================================
// CITAS DE CONVIVENCIA
// ======================================================

func (h *AppointmentHandler) ScheduleVisit(c *gin.Context) {
	requestID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req ScheduleRequest
	if !bindJSON(c, &req) {
		return
	}

	at, err := parseDateTime(h.loc, req.Date, req.Time)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	v, err := h.scheduleVisit.Execute(c.Request.Context(), middleware.Actor(c), requestID, at, req.Reason)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, v)
}

func (h *AppointmentHandler) DecideVisit(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req DecisionRequest
	if !bindJSON(c, &req) {
		return
	}

	v, err := h.decideVisit.Execute(c.Request.Context(), middleware.Actor(c), id, req.Decision)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, v)
}

func (h *AppointmentHandler) RecordOutcome(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req OutcomeRequest
	if !bindJSON(c, &req) {
		return
	}

	v, err := h.recordOutcome.Execute(c.Request.Context(), middleware.Actor(c), id, req.Attendance, req.Interaction)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, v)
}

// ListVisits acepta ?anio=&mes= para el calendario mensual.
func (h *AppointmentHandler) ListVisits(c *gin.Context) {
	list, err := h.listVisits.Execute(c.Request.Context(), middleware.Actor(c), h.query(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, list)
}

// ======================================================
// CITAS VETERINARIAS
// ======================================================

func (h *AppointmentHandler) ScheduleVet(c *gin.Context) {
	var req VetRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.PetID == 0 {
		httperr.FromError(c, httperr.Validation("invalid_request"))
		return
	}

	at, err := parseDateTime(h.loc, req.Date, req.Time)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	v, err := h.scheduleVet.Execute(c.Request.Context(), middleware.Actor(c), ucAppointment.VetInput{
		PetID:       req.PetID,
		AdoptionID:  req.AdoptionID,
		ScheduledAt: at,
		Reason:      req.Reason,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, v)
}

func (h *AppointmentHandler) DecideVet(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req DecisionRequest
	if !bindJSON(c, &req) {
		return
	}

	v, err := h.decideVet.Execute(c.Request.Context(), middleware.Actor(c), id, req.Decision)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, v)
}

func (h *AppointmentHandler) CompleteVet(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req NotesRequest
	if !bindJSON(c, &req) {
		return
	}

	v, err := h.completeVet.Execute(c.Request.Context(), middleware.Actor(c), id, req.Notes)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, v)
}

func (h *AppointmentHandler) ListVet(c *gin.Context) {
	list, err := h.listVet.Execute(c.Request.Context(), middleware.Actor(c), h.query(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, list)
}
