// Package app contains the application setup for the catalog service.
package app

import (
	"log/slog"
	"net/http"

	"github.com/catalogsvc/catalog/internal/config"
	"github.com/catalogsvc/catalog/internal/service"
	"github.com/catalogsvc/catalog/internal/store"
	"github.com/catalogsvc/catalog/internal/transport/rest"
	"github.com/catalogsvc/catalog/pkg/server"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Dependencies struct {
	CatalogService service.CatalogService
	Logger         *slog.Logger
}

func SetupDependencies(dbPool *pgxpool.Pool, logger *slog.Logger) *Dependencies {
	cService := service.NewService(store.NewPgStore(dbPool))

	return &Dependencies{
		CatalogService: cService,
		Logger:         logger,
	}
}

// SetupHttpHandler initializes the HTTP routes for the catalog service.
// Used by E2E tests to set up the HTTP server with the necessary routes and middleware.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	catalogHandler := rest.NewHandler(deps.CatalogService, deps.Logger)
	catalogHandler.RegisterRoutes(mux)
	return mux
}

// SetupHttpServer creates and configures an HTTP server for the catalog
// service, instrumented with OpenTelemetry.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	handler := otelhttp.NewHandler(SetupHttpHandler(deps), "catalog",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, handler)
}
