package main

import (
	"context"

	"github.com/Alvi-C/livingbook-crud-jwt-server/internal/api"
	mongodb "github.com/Alvi-C/livingbook-crud-jwt-server/internal/infrastructure/db/mongo"
	redisdb "github.com/Alvi-C/livingbook-crud-jwt-server/internal/infrastructure/db/redis"
	"github.com/Alvi-C/livingbook-crud-jwt-server/internal/pkg/config"
	"github.com/Alvi-C/livingbook-crud-jwt-server/pkg/logger"
)

// @title        LivingBook API
// @version      1.0
// @description  Booking platform backend: property listings, users, featured listings, and reservations, guarded by a cookie-based session layer.
// @BasePath     /
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// The unique composite booking index is what makes create-or-detect
	// atomic; refuse to serve without it.
	if err := mongodb.NewBookingRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("booking index creation failed")
	}
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}

	e := api.NewRouter(db, rdb, cfg.JWTSecret)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("LivingBook server starting")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
