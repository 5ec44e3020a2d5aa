package main

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Gokulakrishnxn/Stellest-AI/internal/config"
	"github.com/Gokulakrishnxn/Stellest-AI/internal/database"
	"github.com/Gokulakrishnxn/Stellest-AI/internal/handlers"
	"github.com/Gokulakrishnxn/Stellest-AI/internal/linear"
	"github.com/Gokulakrishnxn/Stellest-AI/internal/middleware"
	"github.com/Gokulakrishnxn/Stellest-AI/internal/predictor"
	"github.com/Gokulakrishnxn/Stellest-AI/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl)

	opts := []predictor.Option{predictor.WithDisplayJitter(cfg.DisplayJitter)}

	if cfg.ModelPath != "" {
		model, err := linear.Load(cfg.ModelPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.ModelPath).Msg("failed to load linear model")
		}
		log.Info().Str("version", model.Version).Msg("linear model loaded")
		opts = append(opts, predictor.WithLinearModel(model))
	}

	var store models.PredictionStore
	if cfg.DatabaseURL != "" {
		db, err := database.New(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer db.Close()
		store = db
		opts = append(opts, predictor.WithStore(store))
		log.Info().Msg("prediction audit log enabled")
	} else {
		log.Warn().Msg("DATABASE_URL not set, predictions will not be persisted")
	}

	if lvl > zerolog.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}))
	router.Use(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Handler())

	handlers.New(predictor.New(opts...), store).Register(router)

	log.Info().Str("port", cfg.Port).Msg("starting prediction server")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
