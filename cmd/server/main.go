package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"codedoc/internal/arbiter"
	"codedoc/internal/config"
	"codedoc/internal/explainer"
	"codedoc/internal/handler"
	llmopenai "codedoc/internal/llm/openai"
	"codedoc/internal/port"
	"codedoc/internal/repository/noop"
	"codedoc/internal/repository/postgres"
	"codedoc/internal/router"
	"codedoc/internal/service"
	"codedoc/internal/summarizer/polycoder"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.LLM.APIKey == "" {
		return errors.New("language model API key is not set (OPENAI_API_KEY or CODEDOC_LLM_API_KEY)")
	}

	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize audit trail
	var auditRepo port.GenerationAuditRepository
	if cfg.Audit.Enabled {
		db, dbErr := postgres.NewDB(context.Background(), &cfg.DB)
		if dbErr != nil {
			return fmt.Errorf("failed to connect to database: %w", dbErr)
		}
		defer db.Close()
		auditRepo = postgres.NewGenerationAuditRepo(db)
	} else {
		auditRepo = noop.NewGenerationAuditRepo()
	}

	// Initialize upstream clients
	llm := llmopenai.NewClient(&cfg.LLM)
	summarizer := polycoder.NewClient(&cfg.Summarizer)

	// Initialize services
	docSvc := service.NewDocumentationService(
		summarizer,
		explainer.New(llm),
		arbiter.New(llm),
		auditRepo,
	)

	// Initialize handlers
	generateH := handler.NewGenerateHandler(docSvc)
	healthH := handler.NewHealthHandler(auditRepo)

	// Setup router
	r := router.Setup(cfg.CORS.AllowedOrigins, generateH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s (model %s, summarizer %s)", cfg.Server.Port, llm.Model(), cfg.Summarizer.Endpoint)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
