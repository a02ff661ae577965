package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/shelter-adoption/internal/audit"
	"github.com/BruksfildServices01/shelter-adoption/internal/config"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/adoption"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/adoptionrequest"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/appointment"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/document"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/donation"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/followup"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/pet"
	"github.com/BruksfildServices01/shelter-adoption/internal/domain/profile"
	"github.com/BruksfildServices01/shelter-adoption/internal/handlers"
	"github.com/BruksfildServices01/shelter-adoption/internal/infra/cache"
	"github.com/BruksfildServices01/shelter-adoption/internal/infra/payments"
	"github.com/BruksfildServices01/shelter-adoption/internal/infra/storage"
	"github.com/BruksfildServices01/shelter-adoption/internal/middleware"
	"github.com/BruksfildServices01/shelter-adoption/internal/notify"
	ucAdoption "github.com/BruksfildServices01/shelter-adoption/internal/usecase/adoption"
	ucRequest "github.com/BruksfildServices01/shelter-adoption/internal/usecase/adoptionrequest"
	ucAppointment "github.com/BruksfildServices01/shelter-adoption/internal/usecase/appointment"
	ucDashboard "github.com/BruksfildServices01/shelter-adoption/internal/usecase/dashboard"
	ucDocument "github.com/BruksfildServices01/shelter-adoption/internal/usecase/document"
	ucDonation "github.com/BruksfildServices01/shelter-adoption/internal/usecase/donation"
	ucFollowUp "github.com/BruksfildServices01/shelter-adoption/internal/usecase/followup"
	ucPet "github.com/BruksfildServices01/shelter-adoption/internal/usecase/pet"
	ucProfile "github.com/BruksfildServices01/shelter-adoption/internal/usecase/profile"
	ucReconcile "github.com/BruksfildServices01/shelter-adoption/internal/usecase/reconcile"
)

// Store es todo lo que los casos de uso piden a la base.
// Lo implementan repository.GormStore y memstore.Store.
type Store interface {
	profile.Repository
	pet.Repository
	document.Repository
	adoptionrequest.Repository
	appointment.Repository
	adoption.Repository
	followup.Repository
	donation.Repository
	ucDashboard.Repository
	ucReconcile.Repository
}

type Deps struct {
	Config   *config.Config
	Store    Store
	Bucket   storage.Bucket
	Listing  cache.Listing
	Limiter  middleware.Limiter
	Checkout payments.Checkout
	Notifier notify.Notifier
	Audit    audit.Sink
	Location *time.Location

	// nil = sin ruta de bitácora
	AuditLogs handlers.AuditReader
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	store := d.Store
	loc := d.Location
	minAdvance := time.Duration(cfg.MinVisitAdvanceHours) * time.Hour

	// ======================================================
	// USE CASES
	// ======================================================
	register := ucProfile.NewRegister(store, d.Notifier, d.Audit, cfg.AppBaseURL)
	confirmEmail := ucProfile.NewConfirmEmail(store)
	login := ucProfile.NewLogin(store, cfg.JWTSecret)
	requestReset := ucProfile.NewRequestPasswordReset(store, d.Notifier, d.Audit, cfg.AppBaseURL)
	resetPassword := ucProfile.NewResetPassword(store)

	getMe := ucProfile.NewGetMe(store)
	updateMe := ucProfile.NewUpdateMe(store)
	listProfiles := ucProfile.NewListProfiles(store)
	setActive := ucProfile.NewSetActive(store, d.Audit)

	listPublicPets := ucPet.NewListPublicPets(store, d.Listing)
	getPet := ucPet.NewGetPet(store)
	listPets := ucPet.NewListPets(store)
	createPet := ucPet.NewCreatePet(store, d.Audit)
	updatePet := ucPet.NewUpdatePet(store, d.Audit)
	setAvailability := ucPet.NewSetAvailability(store, d.Audit)
	uploadPhoto := ucPet.NewUploadPhoto(store, d.Bucket)

	uploadDocument := ucDocument.NewUploadDocument(store, d.Bucket, d.Audit)
	listDocuments := ucDocument.NewListDocuments(store)
	getReadiness := ucDocument.NewGetReadiness(store)
	reviewDocument := ucDocument.NewReviewDocument(store, d.Notifier, d.Audit)

	createRequest := ucRequest.NewCreateRequest(store, d.Audit)
	cancelRequest := ucRequest.NewCancelRequest(store, d.Audit)
	decideRequest := ucRequest.NewDecideRequest(store, d.Notifier, d.Audit)
	getRequest := ucRequest.NewGetRequest(store)
	listRequests := ucRequest.NewListRequests(store)

	scheduleVisit := ucAppointment.NewScheduleVisit(store, d.Audit, minAdvance)
	decideVisit := ucAppointment.NewDecideVisit(store, d.Notifier, d.Audit, loc)
	recordOutcome := ucAppointment.NewRecordOutcome(store, d.Notifier, d.Audit)
	listVisits := ucAppointment.NewListVisits(store, loc)
	scheduleVet := ucAppointment.NewScheduleVet(store, d.Audit, minAdvance)
	decideVet := ucAppointment.NewDecideVet(store, d.Notifier, d.Audit, loc)
	completeVet := ucAppointment.NewCompleteVet(store, d.Audit)
	listVet := ucAppointment.NewListVet(store, loc)

	submitAdoption := ucAdoption.NewSubmitAdoption(store, d.Bucket, d.Notifier, d.Audit, loc)
	getAdoption := ucAdoption.NewGetAdoption(store, loc)
	listAdoptions := ucAdoption.NewListAdoptions(store, loc)

	listFollowUps := ucFollowUp.NewListFollowUps(store, loc)
	listDue := ucFollowUp.NewListDue(store, loc)
	submitEvidence := ucFollowUp.NewSubmitEvidence(store, d.Bucket, d.Audit, loc)
	completeFollowUp := ucFollowUp.NewCompleteFollowUp(store, d.Audit, loc)

	createDonation := ucDonation.NewCreateDonation(store, d.Checkout)
	handleWebhook := ucDonation.NewHandleWebhook(store, d.Checkout, d.Audit)
	listDonations := ucDonation.NewListDonations(store)

	adminOverview := ucDashboard.NewAdminOverview(store, loc)
	adopterOverview := ucDashboard.NewAdopterOverview(store, loc)
	reconcile := ucReconcile.New(store, d.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(register, confirmEmail, login, requestReset, resetPassword)
	meHandler := handlers.NewMeHandler(getMe, updateMe, adopterOverview)
	adminHandler := handlers.NewAdminHandler(listProfiles, setActive, adminOverview, reconcile)
	petHandler := handlers.NewPetHandler(
		listPublicPets, getPet, listPets,
		createPet, updatePet, setAvailability, uploadPhoto,
	)
	documentHandler := handlers.NewDocumentHandler(uploadDocument, listDocuments, getReadiness, reviewDocument)
	requestHandler := handlers.NewRequestHandler(createRequest, cancelRequest, decideRequest, getRequest, listRequests)
	appointmentHandler := handlers.NewAppointmentHandler(
		scheduleVisit, decideVisit, recordOutcome, listVisits,
		scheduleVet, decideVet, completeVet, listVet,
		loc,
	)
	adoptionHandler := handlers.NewAdoptionHandler(
		submitAdoption, getAdoption, listAdoptions,
		listFollowUps, listDue, submitEvidence, completeFollowUp,
	)
	donationHandler := handlers.NewDonationHandler(createDonation, handleWebhook, listDonations)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// ------------------------------
		// PÚBLICO
		// ------------------------------
		public := api.Group("/public")
		{
			public.GET("/pets", petHandler.ListPublic)
			public.GET("/pets/:id", petHandler.Get)
			public.POST("/donations", middleware.OptionalAuth(cfg), donationHandler.Create)
		}

		api.POST("/webhooks/mercadopago", donationHandler.Webhook)

		// ------------------------------
		// AUTH
		// ------------------------------
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", middleware.RateLimit(d.Limiter, "login"), authHandler.Login)
			authGroup.POST("/confirm", authHandler.Confirm)
			authGroup.POST("/password/forgot", middleware.RateLimit(d.Limiter, "reset"), authHandler.RequestReset)
			authGroup.POST("/password/reset", authHandler.ResetPassword)
		}

		// ------------------------------
		// ADOPTANTE
		// ------------------------------
		me := api.Group("/me")
		me.Use(middleware.AuthMiddleware(cfg))
		{
			me.GET("", meHandler.GetMe)
			me.PATCH("", meHandler.UpdateMe)
			me.GET("/dashboard", meHandler.Dashboard)

			me.GET("/documents", documentHandler.List)
			me.GET("/documents/readiness", documentHandler.Readiness)
			me.POST("/documents/:tipo", documentHandler.Upload)

			me.POST("/requests", requestHandler.Create)
			me.GET("/requests", requestHandler.List)
			me.GET("/requests/:id", requestHandler.Get)
			me.PATCH("/requests/:id/cancel", requestHandler.Cancel)
			me.POST("/requests/:id/visits", appointmentHandler.ScheduleVisit)
			me.POST("/requests/:id/adoption", adoptionHandler.Submit)

			me.GET("/visits", appointmentHandler.ListVisits)
			me.GET("/vet-appointments", appointmentHandler.ListVet)
			me.POST("/vet-appointments", appointmentHandler.ScheduleVet)

			me.GET("/adoptions", adoptionHandler.List)
			me.GET("/adoptions/:id", adoptionHandler.Get)
			me.GET("/adoptions/:id/follow-ups", adoptionHandler.FollowUps)
			me.POST("/follow-ups/:id/evidence", adoptionHandler.SubmitEvidence)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireAdmin())
		{
			admin.GET("/dashboard", adminHandler.Dashboard)
			admin.POST("/reconcile", adminHandler.Reconcile)

			admin.GET("/profiles", adminHandler.ListProfiles)
			admin.PATCH("/profiles/:id/active", adminHandler.SetActive)
			admin.GET("/profiles/:id/documents", documentHandler.List)
			admin.GET("/profiles/:id/documents/readiness", documentHandler.Readiness)
			admin.PATCH("/documents/:id/review", documentHandler.Review)

			admin.GET("/pets", petHandler.List)
			admin.POST("/pets", petHandler.Create)
			admin.PUT("/pets/:id", petHandler.Update)
			admin.PATCH("/pets/:id/availability", petHandler.SetAvailability)
			admin.POST("/pets/:id/photo", petHandler.UploadPhoto)

			admin.GET("/requests", requestHandler.List)
			admin.GET("/requests/:id", requestHandler.Get)
			admin.PATCH("/requests/:id/decision", requestHandler.Decide)

			admin.GET("/visits", appointmentHandler.ListVisits)
			admin.PATCH("/visits/:id/decision", appointmentHandler.DecideVisit)
			admin.PATCH("/visits/:id/outcome", appointmentHandler.RecordOutcome)

			admin.GET("/vet-appointments", appointmentHandler.ListVet)
			admin.POST("/vet-appointments", appointmentHandler.ScheduleVet)
			admin.PATCH("/vet-appointments/:id/decision", appointmentHandler.DecideVet)
			admin.PATCH("/vet-appointments/:id/notes", appointmentHandler.CompleteVet)

			admin.GET("/adoptions", adoptionHandler.List)
			admin.GET("/adoptions/:id", adoptionHandler.Get)
			admin.GET("/adoptions/:id/follow-ups", adoptionHandler.FollowUps)
			admin.GET("/follow-ups/due", adoptionHandler.Due)
			admin.PATCH("/follow-ups/:id/complete", adoptionHandler.CompleteFollowUp)

			admin.GET("/donations", donationHandler.List)

			if d.AuditLogs != nil {
				admin.GET("/audit-logs", handlers.NewAuditLogsHandler(d.AuditLogs, loc).List)
			}
		}
	}
}
