package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	apihttp "github.com/artem13815/skillpath/api/http"
	"github.com/artem13815/skillpath/api/http/handlers"
	"github.com/artem13815/skillpath/pkg/auth"
	"github.com/artem13815/skillpath/pkg/config"
	"github.com/artem13815/skillpath/pkg/health"
	healthpg "github.com/artem13815/skillpath/pkg/health/checkers"
	"github.com/artem13815/skillpath/pkg/llm"
	"github.com/artem13815/skillpath/pkg/llm/gemini"
	"github.com/artem13815/skillpath/pkg/llm/openrouter"
	"github.com/artem13815/skillpath/pkg/logging"
	"github.com/artem13815/skillpath/pkg/recommendation"
	pgrepo "github.com/artem13815/skillpath/pkg/repository/postgres"
	"github.com/artem13815/skillpath/pkg/storage/postgres"
)

func newRootCmd() *cobra.Command {
	var envFiles []string

	root := &cobra.Command{
		Use:          "skillpath",
		Short:        "Account API and skill-to-career recommendations",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), config.Load(envFiles...))
		},
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "dotenv file(s) to load (default ./.env)")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Ensure the schema and start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), config.Load(envFiles...))
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create the users and skills tables if missing, then exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context(), config.Load(envFiles...))
		},
	})
	return root
}

func newLogger(cfg config.Config) logging.Logger {
	return logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
}

func openStore(ctx context.Context, cfg config.Config) (*postgres.Store, error) {
	pool, err := postgres.Connect(ctx, cfg.DatabaseURL, postgres.PoolOptions{
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}
	store := postgres.NewStore(pool)
	if err := store.EnsureSchema(ctx); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}

func runMigrate(ctx context.Context, cfg config.Config) error {
	log := newLogger(cfg)
	if err := cfg.ValidateStore(); err != nil {
		log.Error(ctx, "invalid configuration", "error", err)
		return err
	}
	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Error(ctx, "schema setup failed", "error", err)
		return err
	}
	defer store.Close()
	log.Info(ctx, "schema is up to date")
	return nil
}

func newGenerator(ctx context.Context, cfg config.Config) (llm.TextGenerator, error) {
	switch cfg.AIProvider {
	case config.ProviderOpenRouter:
		return openrouter.New(
			cfg.OpenRouterAPIKey,
			cfg.OpenRouterBase,
			cfg.OpenRouterModel,
			cfg.OpenRouterAppTitle,
			cfg.OpenRouterReferer,
		), nil
	case config.ProviderGemini:
		client, err := gemini.New(ctx, gemini.Config{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			BaseURL: cfg.GeminiBaseURL,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.AIProvider)
	}
}

func runServe(ctx context.Context, cfg config.Config) error {
	log := newLogger(cfg)
	if err := cfg.Validate(); err != nil {
		log.Error(ctx, "invalid configuration", "error", err)
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Store and schema come first: no request is accepted without them.
	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Error(ctx, "store init failed", "error", err)
		return err
	}
	defer store.Close()

	generator, err := newGenerator(ctx, cfg)
	if err != nil {
		log.Error(ctx, "provider init failed", "error", err)
		return err
	}

	userRepo := pgrepo.NewUserRepository(store)
	skillRepo := pgrepo.NewSkillRepository(store)

	authUC := auth.NewAuthService(userRepo)
	recUC := recommendation.NewService(skillRepo, generator)
	readiness := health.NewService(healthpg.NewPostgresChecker(store))

	app := apihttp.NewApp(log, cfg.CORSOrigins)
	apihttp.Register(app,
		handlers.NewAuthHandler(authUC, log),
		handlers.NewRecommendationHandler(recUC, log),
		handlers.NewHealthHandler(readiness, log),
	)

	listenErr := make(chan error, 1)
	go func() {
		log.Info(ctx, "HTTP server listening", "port", cfg.Port, "provider", cfg.AIProvider)
		listenErr <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-listenErr:
		if err != nil {
			log.Error(ctx, "server stopped", "error", err)
		}
		return err
	case <-ctx.Done():
	}

	log.Info(context.Background(), "shutting down", "timeout", cfg.ShutdownTimeout.String())
	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil && !errors.Is(err, context.Canceled) {
		log.Error(context.Background(), "shutdown failed", "error", err)
		return err
	}
	return nil
}
