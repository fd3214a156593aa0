package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/digitalshield/shield/pkg/analyzer"
	"github.com/digitalshield/shield/pkg/app/alerts"
	appAnalysis "github.com/digitalshield/shield/pkg/app/analysis"
	"github.com/digitalshield/shield/pkg/app/completion"
	"github.com/digitalshield/shield/pkg/config"
	handlers "github.com/digitalshield/shield/pkg/handlers/http"
	wsHandlers "github.com/digitalshield/shield/pkg/handlers/websocket"
	infraCache "github.com/digitalshield/shield/pkg/infra/cache"
	"github.com/digitalshield/shield/pkg/infra/cache/channel"
	"github.com/digitalshield/shield/pkg/infra/cache/event"
	"github.com/digitalshield/shield/pkg/infra/database"
	infraLogger "github.com/digitalshield/shield/pkg/infra/logger"
	"github.com/digitalshield/shield/pkg/infra/providers/factory"
	"github.com/digitalshield/shield/pkg/infra/repository"
	"github.com/digitalshield/shield/pkg/server"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger()

	if err := config.Load("./config"); err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	cfg := config.GetConfig()

	db, err := database.NewDB(logger, &database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close()

	cacheClient, err := infraCache.NewClient(infraCache.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Fatalf("failed to initialize redis: %v", err)
	}
	defer cacheClient.Close()

	// repository
	analysisRepository := repository.NewAnalysisRepository(db.DB)
	tipRepository := repository.NewSafetyTipRepository(db.DB)

	// pipeline
	locator := factory.NewProviderLocator()
	gateway := completion.NewGateway(logger, locator, cfg.Models.Models, cfg.Pipeline.CompletionTimeout())
	parser := analyzer.NewParser()

	// redis publisher / listener
	redisPublisher := infraCache.NewRedisEventPublisher(cacheClient)
	redisListener := infraCache.NewRedisEventListener(logger, cacheClient)

	pipeline := appAnalysis.NewPipeline(
		logger, gateway, parser, analysisRepository, redisPublisher, cfg.Pipeline.MaxTextLength,
	)

	// alerts
	hub := alerts.NewHub(logger)
	analysisSavedSubscriber := alerts.NewAnalysisSavedSubscriber(logger, hub)
	tipCreatedSubscriber := alerts.NewSafetyTipCreatedSubscriber(logger, hub)

	infraCache.RegisterEventSubscriber[event.AnalysisSavedEvent](redisListener, analysisSavedSubscriber)
	infraCache.RegisterEventSubscriber[event.SafetyTipCreatedEvent](redisListener, tipCreatedSubscriber)

	// Handler Transport
	handlerTransport := handlers.HandlerTransport{
		// Pipeline
		AnalyzeHandler:              handlers.NewAnalyzeHandler(logger, pipeline),
		GenerateSaferVersionHandler: handlers.NewGenerateSaferVersionHandler(logger, pipeline),
		GenerateAdviceHandler:       handlers.NewGenerateAdviceHandler(logger, pipeline),
		DisposeSessionHandler:       handlers.NewDisposeSessionHandler(logger, pipeline),
		// History
		SaveAnalysisHandler:   handlers.NewSaveAnalysisHandler(logger, pipeline),
		ListAnalysesHandler:   handlers.NewListAnalysesHandler(logger, analysisRepository),
		DeleteAnalysisHandler: handlers.NewDeleteAnalysisHandler(logger, analysisRepository),
		// Moderation
		ReviewQueueHandler: handlers.NewReviewQueueHandler(logger, analysisRepository, cfg.Pipeline.ReviewThreshold),
		// Safety tips
		CreateSafetyTipHandler: handlers.NewCreateSafetyTipHandler(logger, tipRepository, redisPublisher),
		ListSafetyTipsHandler:  handlers.NewListSafetyTipsHandler(logger, tipRepository),
	}

	wsHandlerTransport := wsHandlers.HandlerTransport{
		AlertsHandler: wsHandlers.NewAlertsHandler(logger, hub),
	}

	go func() {
		fmt.Println("starting listening redis events...")
		redisListener.Listen(ctx, channel.AnalysisEventsChannel, channel.TipEventsChannel)
	}()

	srv := server.NewAPIServer(server.APIServerDI{
		Config:             cfg,
		Logger:             logger,
		HandlerTransport:   handlerTransport,
		WsHandlerTransport: wsHandlerTransport,
	})

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	fmt.Println("shutting down server...")
	if err := srv.Shutdown(); err != nil {
		fmt.Println("error shutting down server:", err)
		os.Exit(1)
	}
	fmt.Println("server gracefully stopped")
}
