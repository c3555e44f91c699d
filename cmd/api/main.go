package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"schooldirectory/internal/blob"
	"schooldirectory/internal/config"
	"schooldirectory/internal/database"
	"schooldirectory/internal/domain"
	"schooldirectory/internal/logger"
	"schooldirectory/internal/middleware"
	"schooldirectory/internal/modules/school"
	"schooldirectory/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}

	if err := db.AutoMigrate(&domain.School{}); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	log.Info().Msg("schools table ready")

	blobs, err := blob.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("blob store init failed")
	}

	schoolRepo := repository.NewSchoolRepository(db)
	schoolService := school.NewService(schoolRepo, blobs)
	schoolHandler := school.NewHandler(schoolService)

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())

	api := r.Group("/api")
	schoolHandler.RegisterRoutes(api)

	// Two mounts over one directory: /schoolImages is the canonical path,
	// /uploads survives for old clients.
	r.Static("/schoolImages", blobs.Dir())
	r.Static("/uploads", blobs.Dir())

	log.Info().
		Str("port", cfg.Port).
		Str("upload_dir", blobs.Dir()).
		Str("public_base_url", cfg.PublicBaseURL).
		Msg("server running")

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
