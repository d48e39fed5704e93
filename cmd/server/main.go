package main

import (
	"github.com/dogmap/dogmap-api/internal/api"
	"github.com/dogmap/dogmap-api/internal/infrastructure/config"
	"github.com/dogmap/dogmap-api/internal/infrastructure/db/memory"
	"github.com/dogmap/dogmap-api/pkg/logger"

	_ "github.com/dogmap/dogmap-api/docs"
)

// @title           DogMap API
// @version         1.0.0
// @description     API REST para sistema de locais pet-friendly.
// @BasePath        /
//
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
// @description     Token de autenticação simulado (formato token_<id>_<timestamp>)
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	store := memory.NewStore()
	store.Seed()

	stats := store.Stats()
	log.Info().
		Int("users", stats.Users).
		Int("places", stats.Places).
		Int("reviews", stats.Reviews).
		Int("favorites", stats.Favorites).
		Msg("seed data loaded")

	e := api.NewRouter(store, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting DogMap API")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
