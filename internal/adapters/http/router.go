package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ayyan656/Real-estate-SaaS-CRM/internal/application"
)

type Handler struct {
	service *application.Service
	board   *application.Board
	desk    *application.ListingDesk
}

func NewHandler(service *application.Service, board *application.Board, desk *application.ListingDesk) *Handler {
	return &Handler{service: service, board: board, desk: desk}
}

func NewRouter(handler *Handler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware)
	r.Use(loggingMiddleware(logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { writeMessage(w, http.StatusOK, "ok") })
	r.Get("/readyz", func(w http.ResponseWriter, _ *http.Request) { writeMessage(w, http.StatusOK, "ready") })

	r.Route("/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", handler.login)
			r.Post("/register", handler.register)
			r.Post("/google", handler.googleLogin)
			r.Post("/logout", handler.logout)

			r.Group(func(r chi.Router) {
				r.Use(handler.authMiddleware)
				r.Get("/me", handler.currentUser)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(handler.authMiddleware)

			r.Get("/agents", handler.listAgents)

			r.Route("/leads", func(r chi.Router) {
				r.Get("/", handler.listLeads)
				r.Post("/", handler.addLead)
				r.Get("/{id}", handler.getLead)
				r.Patch("/{id}", handler.patchLead)
				r.Post("/{id}/status", handler.updateLeadStatus)
				r.Post("/{id}/advance", handler.advanceLead)
			})

			r.Route("/pipeline", func(r chi.Router) {
				r.Get("/board", handler.pipelineBoard)
				r.Post("/filters/toggle", handler.toggleFilter)
				r.Post("/filters/clear", handler.clearFilters)
				r.Post("/select", handler.selectLead)
				r.Post("/drag/start", handler.dragStart)
				r.Post("/drag/over", handler.dragOver)
				r.Post("/drag/leave", handler.dragLeave)
				r.Post("/drop", handler.drop)
			})

			r.Route("/properties", func(r chi.Router) {
				r.Get("/", handler.listProperties)
				r.Post("/", handler.addProperty)
				r.Post("/generate-description", handler.generateDescription)
				r.Get("/{id}", handler.getProperty)
				r.Put("/{id}", handler.updateProperty)
				r.Delete("/{id}", handler.deleteProperty)
			})
		})
	})
	return r
}
