package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"

	"github.com/digiserv/backend/auth"
	"github.com/digiserv/backend/intake"
	"github.com/digiserv/backend/subm"
)

// LegacyLister reads the legacy flat-file store for the public
// submissions endpoint.
type LegacyLister interface {
	List(ctx context.Context) ([]subm.Submission, error)
}

// AdminRepo backs the admin console surface. Nil disables it.
type AdminRepo interface {
	List(ctx context.Context) ([]subm.Submission, error)
	UpdateStatus(ctx context.Context, id string, status subm.Status) error
}

type HttpServer struct {
	intake     *intake.LegacyPipeline
	legacyList LegacyLister
	adminRepo  AdminRepo
	creds      auth.AdminCreds
	jwtKey     []byte
	router     *chi.Mux
}

func NewHttpServer(
	intakePipeline *intake.LegacyPipeline,
	legacyList LegacyLister,
	adminRepo AdminRepo,
	creds auth.AdminCreds,
	jwtKey []byte,
) *HttpServer {
	router := chi.NewRouter()

	logger := httplog.NewLogger("digiserv", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		RequestHeaders:   true,
		MessageFieldName: "message",
	})

	router.Use(httplog.RequestLogger(logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:5173", "http://localhost:5174",
			"http://localhost:5175", "http://localhost:3000",
		},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           3000,
	}))

	router.Use(getJwtAuthMiddleware(jwtKey))

	server := &HttpServer{
		intake:     intakePipeline,
		legacyList: legacyList,
		adminRepo:  adminRepo,
		creds:      creds,
		jwtKey:     jwtKey,
		router:     router,
	}

	server.routes()

	return server
}

func (httpserver *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, httpserver.router)
}

// Handler exposes the router, mainly for tests.
func (httpserver *HttpServer) Handler() http.Handler {
	return httpserver.router
}

func (httpserver *HttpServer) routes() {
	r := httpserver.router
	r.Get("/api/health", httpserver.getHealth)
	r.Post("/api/contact", httpserver.createContact)
	r.Get("/api/submissions", httpserver.listSubmissions)
	r.Post("/api/admin/login", httpserver.adminLogin)
	r.Get("/api/admin/whoami", httpserver.adminWhoami)
	r.Get("/api/admin/submissions", httpserver.adminListSubmissions)
	r.Patch("/api/admin/submissions/{id}/status", httpserver.adminUpdateStatus)
}
