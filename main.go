package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"soluciones-site/api/pkg/clients/emailjs"
	"soluciones-site/api/pkg/db"
	"soluciones-site/api/pkg/i18n"
	"soluciones-site/api/pkg/metrics"
	"soluciones-site/api/pkg/middleware"
	"soluciones-site/api/services/contact"
	"soluciones-site/api/services/content"
)

// envOr returns the environment variable's value, or fallback when unset.
func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func main() {
	ctx := context.Background()
	logHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	slog.SetDefault(slog.New(logHandler))

	dbURL, ok := os.LookupEnv("DATABASE_URL")
	if !ok {
		slog.Error("DATABASE_URL is not set")
		return
	}

	dbCfg := db.DefaultConfig(dbURL)
	pool, err := db.Connect(ctx, dbCfg)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		return
	}
	defer pool.Close()

	translator, err := i18n.New()
	if err != nil {
		slog.Error("Failed to load locale bundles", "error", err)
		return
	}

	// The EmailJS identifiers default to the site's configured service;
	// without the public key the transport falls back to a logging stub
	// so local development never sends real mail.
	mailCfg := contact.Config{
		ServiceID:              envOr("EMAILJS_SERVICE_ID", "service_iox8zpt"),
		NotificationTemplateID: envOr("EMAILJS_TEMPLATE_MAIN", "template_b87l7kg"),
		AutoReplyTemplateID:    envOr("EMAILJS_TEMPLATE_AUTOREPLY", "template_sascql7"),
		PublicKey:              os.Getenv("EMAILJS_PUBLIC_KEY"),
	}

	var mailer emailjs.Client
	if mailCfg.PublicKey != "" {
		mailer = emailjs.NewAPIClient(&http.Client{Timeout: 10 * time.Second})
	} else {
		slog.Warn("EMAILJS_PUBLIC_KEY is not set, using stub email client")
		mailer = emailjs.NewStubClient()
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	// setup router
	mainRouter := mux.NewRouter()
	mainRouter.Use(middleware.RequestID)
	mainRouter.Handle("/metrics", m.Handler()).Methods("GET")

	apiRouter := mainRouter.PathPrefix("/api/v1").Subrouter()

	workflow, err := contact.NewWorkflow(mailCfg, mailer, translator)
	if err != nil {
		slog.Error("Failed to create submission workflow", "error", err)
		return
	}

	contactService, err := contact.NewService(workflow, translator, m.Submissions)
	if err != nil {
		slog.Error("Failed to create contact service", "error", err)
		return
	}
	contactService.LoadRoutes(apiRouter)

	contentStore, err := content.NewInstance(pool)
	if err != nil {
		slog.Error("Failed to create content store", "error", err)
		return
	}

	contentService, err := content.NewService(contentStore)
	if err != nil {
		slog.Error("Failed to create content service", "error", err)
		return
	}
	contentService.LoadRoutes(apiRouter)

	corsHandler := handlers.CORS(
		// Frontend URL
		handlers.AllowedOrigins([]string{envOr("ALLOWED_ORIGIN", "http://localhost:5173")}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(m.Instrument(mainRouter))

	srv := &http.Server{
		Addr:    ":8080",
		Handler: corsHandler,
	}

	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("Starting server on :8080")
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		slog.Error("Server error", "error", err)

	case sig := <-shutdown:
		slog.Info("Shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			slog.Error("Could not stop server gracefully", "error", err)
			srv.Close()
		}
	}
}
