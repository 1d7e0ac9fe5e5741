package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"docman/internal/domain/attachments"
	"docman/internal/domain/audit"
	"docman/internal/domain/documents"
	"docman/internal/domain/employees"
	"docman/internal/domain/salaries"
	"docman/internal/platform/config"
	"docman/internal/platform/db"
	"docman/internal/platform/metrics"
	attachmentshandler "docman/internal/transport/http/handlers/attachments"
	audithandler "docman/internal/transport/http/handlers/audit"
	authhandler "docman/internal/transport/http/handlers/auth"
	documentshandler "docman/internal/transport/http/handlers/documents"
	employeeshandler "docman/internal/transport/http/handlers/employees"
	exportshandler "docman/internal/transport/http/handlers/exports"
	salarieshandler "docman/internal/transport/http/handlers/salaries"
	"docman/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}

	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	var collectors *metrics.Metrics
	if cfg.MetricsEnabled {
		collectors = metrics.New()
	}

	auditSvc := audit.New(pool)
	attachmentStore := attachments.NewStore(pool)
	attachmentSvc := attachments.NewService(attachmentStore, auditSvc, collectors, cfg.AttachmentsDir)
	documentSvc := documents.NewService(documents.NewStore(pool), attachmentStore, auditSvc, collectors)
	employeeSvc := employees.NewService(employees.NewStore(pool), auditSvc, collectors)
	salarySvc := salaries.NewService(salaries.NewStore(pool), auditSvc, collectors)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collectors))
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Handle("/metrics", promhttp.Handler())
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWTSecret))

		authHandler := authhandler.NewHandler(pool, cfg.JWTSecret)
		r.Post("/auth/login", authHandler.HandleLogin)

		documentshandler.NewHandler(documentSvc).RegisterRoutes(r)
		attachmentshandler.NewHandler(attachmentSvc).RegisterRoutes(r)
		employeeshandler.NewHandler(employeeSvc).RegisterRoutes(r)
		salarieshandler.NewHandler(salarySvc).RegisterRoutes(r)
		audithandler.NewHandler(auditSvc).RegisterRoutes(r)
		exportshandler.NewHandler(documentSvc, salarySvc).RegisterRoutes(r)
	})

	log.Printf("records manager listening on %s", cfg.Addr)
	server := &http.Server{
		Addr:           cfg.Addr,
		Handler:        router,
		MaxHeaderBytes: 1 << 20,
	}
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
