// internal/handler/router.go
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/unclebandit/creatorhub-backend/internal/controller"
)

// Controllers groups everything the router dispatches to.
type Controllers struct {
	Drafts    *controller.DraftController
	Wizard    *controller.WizardController
	Campaigns *controller.CampaignController
}

// NewRouter creates a new router with all routes configured
func NewRouter(c Controllers, log *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggingMiddleware(log))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(OwnerMiddleware)

		// Draft routes
		r.Get("/drafts", c.Drafts.GetDraft)
		r.Put("/drafts", c.Drafts.SaveDraft)
		r.Delete("/drafts/{id}", c.Drafts.DeleteDraft)

		// Wizard routes
		r.Route("/wizard", func(r chi.Router) {
			r.Post("/", c.Wizard.Begin)
			r.Get("/", c.Wizard.GetState)
			r.Delete("/", c.Wizard.Reset)
			r.Patch("/sections/{section}", c.Wizard.UpdateSection)
			r.Post("/next", c.Wizard.Next)
			r.Post("/previous", c.Wizard.Previous)
			r.Post("/steps/{step}", c.Wizard.GoTo)
			r.Post("/complete", c.Wizard.CompleteStep)
			r.Post("/submit", c.Wizard.Submit)
			r.Get("/notices", c.Wizard.Notices)
		})

		// Campaign routes
		r.Get("/campaigns", c.Campaigns.ListCampaigns)
		r.Get("/campaigns/{id}", c.Campaigns.GetCampaignDetails)
	})

	return r
}
