package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nutrichat/config"
	_ "nutrichat/docs" // Swagger docs
	"nutrichat/internal/httpserver"
	"nutrichat/internal/meal/repository/inmem"
	"nutrichat/internal/meal/session"
	mealUC "nutrichat/internal/meal/usecase"
	profileUC "nutrichat/internal/profile/usecase"
	"nutrichat/pkg/llmprovider"
	"nutrichat/pkg/log"
)

// @title       NutriChat API
// @description Conversational meal logging: describe what you ate, confirm, and it lands in your daily nutrition log.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting NutriChat...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}

	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)

	// 4. Meal domain
	logRepo := inmem.NewLogRepository()
	sessions := session.NewStore(
		cfg.Chat.MaxSessions,
		parseDuration(cfg.Chat.SessionTTL, 2*time.Hour),
	)
	mealUseCase := mealUC.New(logger, manager, logRepo, sessions, cfg.Chat)

	// 5. Profile domain
	profileUseCase := profileUC.New(logger, cfg.Profile)

	// 6. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ServerCfg:   cfg.HTTPServer,
		MealUC:      mealUseCase,
		ProfileUC:   profileUseCase,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil && d > 0 {
		return d
	}
	return fallback
}
