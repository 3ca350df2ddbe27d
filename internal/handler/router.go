package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Feedback      *FeedbackHandler
	AdminFeedback *AdminFeedbackHandler
	Projects      *ProjectHandler
	Clients       *ClientHandler
	Contact       *ContactHandler
	Content       *ContentHandler
}

// NewRouter builds the chi router with middleware and all routes mounted.
// frontendURL is the allowed CORS origin.
func NewRouter(h Handlers, frontendURL string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/pages/{slug}", h.Content.Page)
		r.Post("/contact", h.Contact.Submit)
		r.Get("/projects", h.Projects.List)
		r.Get("/clients", h.Clients.List)
		r.Post("/feedback", h.Feedback.Submit)

		// Admin dashboard. No auth; the deployment keeps it behind a
		// private path.
		r.Route("/admin/feedback", func(r chi.Router) {
			r.Get("/", h.AdminFeedback.List)
			r.Get("/stats", h.AdminFeedback.Stats)
			r.Patch("/{id}/review", h.AdminFeedback.ToggleReview)
		})
	})

	return r
}
