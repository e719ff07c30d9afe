package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fundsight/Fund-Analytics-Backend/internal/api/handlers"
	custommiddleware "github.com/fundsight/Fund-Analytics-Backend/internal/api/middleware"
	"github.com/fundsight/Fund-Analytics-Backend/internal/config"
	"github.com/fundsight/Fund-Analytics-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	fundService *service.FundService,
	researchService *service.ResearchService,
	uploadService *service.UploadService,
	dispatcher *service.Dispatcher,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/fund", func(r chi.Router) {
			fundHandler := handlers.NewFundHandler(fundService, dispatcher)
			researchHandler := handlers.NewResearchHandler(researchService, dispatcher)
			r.Get("/", fundHandler.Funds)
			r.Get("/compare", researchHandler.Compare)
			r.Route("/{fundId}", func(r chi.Router) {
				r.Get("/", fundHandler.Fund)
				r.Get("/research", researchHandler.FundResearch)
				r.Get("/performance", researchHandler.Performance)
				r.Get("/risk", researchHandler.Risk)
			})
		})

		r.Route("/dataset", func(r chi.Router) {
			datasetHandler := handlers.NewDatasetHandler(uploadService)
			r.Post("/", datasetHandler.Create)
			r.Get("/", datasetHandler.List)
			r.Get("/{datasetId}", datasetHandler.Get)
		})

		researchHandler := handlers.NewResearchHandler(researchService, dispatcher)
		r.Get("/search", researchHandler.Search)

		// Anything else goes through the dispatcher, which soft-fails
		// unimplemented endpoints instead of 404ing the dashboard.
		gatewayHandler := handlers.NewGatewayHandler(dispatcher)
		r.HandleFunc("/*", gatewayHandler.Dispatch)
	})

	return r
}
