// GET  /contacts          # List the caller's cards (auth)
// POST /contacts          # Create an empty card, returns its id (auth)
// PUT  /contacts          # Full-replace update of one card (auth)
// DELETE /contacts?id=N   # Delete one card (auth)
// GET  /                  # Index page shell (public)
// GET  /api/v1/health     # Health check (public)

package api

import (
	contactAPI "cardbox/internal/app/server/api/http/contact"
	healthAPI "cardbox/internal/app/server/api/http/health"
	"cardbox/internal/app/server/api/http/middleware"
	"cardbox/internal/app/server/api/http/middleware/auth"
	"cardbox/internal/app/server/api/http/middleware/logger"
	pageAPI "cardbox/internal/app/server/api/http/page"
	"cardbox/internal/domain/contact"
	"cardbox/internal/identity"
	"cardbox/internal/infrastructure/storage/postgres"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"
)

// New builds the chi mux with every operation registered through huma.
func New(storage *postgres.Storage, verifier identity.Verifier, log *slog.Logger) (*chi.Mux, error) {
	mux := chi.NewMux()
	mux.Use(chimw.Recoverer)

	config := huma.DefaultConfig("Contact Cards API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, config)

	authMW := auth.New(verifier, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	pageHandler, err := pageAPI.NewHandler(log, middlewares.GetAllAndClear())
	if err != nil {
		return nil, err
	}

	contactRepo := postgres.NewContactRepository(storage, log)
	contactService := contact.NewService(contactRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	contactHandler := contactAPI.NewHandler(contactService, log, middlewares.GetAllAndClear())

	healthHandler.SetupRoutes(API)
	pageHandler.SetupRoutes(API)
	contactHandler.SetupRoutes(API)

	return mux, nil
}
