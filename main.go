package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	api "mailpilot-backend/cmd/api"
	"mailpilot-backend/internal/engine"
	mirrordomain "mailpilot-backend/internal/mirror/domain"
	mirrorRepo "mailpilot-backend/internal/mirror/repository"
	mirrorUsecase "mailpilot-backend/internal/mirror/usecase"
	statsdomain "mailpilot-backend/internal/stats/domain"
	statsRepo "mailpilot-backend/internal/stats/repository"
	statsUsecase "mailpilot-backend/internal/stats/usecase"
	tenantdomain "mailpilot-backend/internal/tenant/domain"
	tenantRepo "mailpilot-backend/internal/tenant/repository"
	tenantUsecase "mailpilot-backend/internal/tenant/usecase"
	"mailpilot-backend/pkg/config"
	"mailpilot-backend/pkg/database"
	"mailpilot-backend/pkg/gmail"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&tenantdomain.Tenant{}, &mirrordomain.Label{}, &mirrordomain.Rule{}, &statsdomain.StatisticRecord{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	tenantRepository := tenantRepo.NewTenantRepository(db)
	labelRepository := mirrorRepo.NewLabelRepository(db)
	ruleRepository := mirrorRepo.NewRuleRepository(db)
	statRepository := statsRepo.NewStatisticRepository(db)

	// Initialize Gmail service (shared by usecases and the engine)
	gmailService := gmail.NewService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURI)

	// Initialize use cases
	oauthUsecaseInstance := tenantUsecase.NewOAuthUsecase(tenantRepository, labelRepository, ruleRepository, gmailService, cfg)
	labelUsecaseInstance := mirrorUsecase.NewLabelUsecase(labelRepository, gmailService)
	ruleUsecaseInstance := mirrorUsecase.NewRuleUsecase(ruleRepository, gmailService)
	statsUsecaseInstance := statsUsecase.NewStatsUsecase(statRepository, gmailService)

	// Initialize reconciliation engine and its daily scheduler
	reconciliationEngine := engine.NewEngine(tenantRepository, ruleRepository, statRepository, gmailService)
	scheduler := engine.NewScheduler(reconciliationEngine, cfg.EngineRunHourUTC)
	scheduler.Start()

	// Stop the scheduler on shutdown; a run already in progress finishes
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		scheduler.Stop()
		os.Exit(0)
	}()

	// Initialize HTTP handler
	handler := api.NewHandler(oauthUsecaseInstance, labelUsecaseInstance, ruleUsecaseInstance, statsUsecaseInstance, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
