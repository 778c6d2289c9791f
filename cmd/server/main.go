package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/datacatalog/metadata-system/internal/api"
	"github.com/datacatalog/metadata-system/internal/core/service"
	"github.com/datacatalog/metadata-system/internal/core/token"
	"github.com/datacatalog/metadata-system/internal/infrastructure/config"
	mongodb "github.com/datacatalog/metadata-system/internal/infrastructure/db/mongo"
	redisdb "github.com/datacatalog/metadata-system/internal/infrastructure/db/redis"
	"github.com/datacatalog/metadata-system/pkg/logger"
)

// @title        Customer Metadata Repository API
// @version      1.0
// @description  Catalog of customer-data attributes, entities, business term owners, glossary terms and source systems.
// @BasePath     /
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Service: "metadata-system",
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	// --- Repositories ---
	authRepo := mongodb.NewAuthRepository(db)
	attributeRepo := mongodb.NewAttributeRepository(db)
	ownerRepo := mongodb.NewBusinessTermOwnerRepository(db)
	entityRepo := mongodb.NewEntityRepository(db)
	glossaryRepo := mongodb.NewGlossaryTermRepository(db)
	sourceSystemRepo := mongodb.NewSourceSystemRepository(db)

	for name, ensure := range map[string]func(context.Context) error{
		"users":                      authRepo.EnsureIndexes,
		"attribute":                  attributeRepo.EnsureIndexes,
		"business_term_owner":        ownerRepo.EnsureIndexes,
		"entity":                     entityRepo.EnsureIndexes,
		"glossary_of_business_terms": glossaryRepo.EnsureIndexes,
		"source_systems":             sourceSystemRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("index creation failed")
		}
	}

	if cfg.SeedUsers != "" {
		if err := service.SeedUsers(ctx, authRepo, cfg.SeedUsers); err != nil {
			log.Fatal().Err(err).Str("path", cfg.SeedUsers).Msg("user seed failed")
		}
	}

	// --- Services ---
	codec := token.NewCodec(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(authRepo, redisdb.NewLoginThrottle(rdb), codec)
	catalogService := service.NewCatalogService(attributeRepo, ownerRepo, entityRepo, glossaryRepo, sourceSystemRepo)

	e := api.NewRouter(api.Deps{
		Auth:    authService,
		Catalog: catalogService,
		Codec:   codec,
		Logger:  log,
		Mongo:   db,
		Redis:   rdb,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
