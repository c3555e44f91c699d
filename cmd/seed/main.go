package main

import (
	"github.com/rs/zerolog/log"

	"schooldirectory/internal/config"
	"schooldirectory/internal/database"
	"schooldirectory/internal/domain"
	"schooldirectory/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	dsn := cfg.DatabaseURL
	if dsn == "" {
		dsn = "schools.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}

	log.Info().Msg("running AutoMigrate")
	if err := db.AutoMigrate(&domain.School{}); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	log.Info().Msg("cleaning old data")
	db.Exec("DELETE FROM schools")

	schools := []domain.School{
		{
			Name:    "Lotus High School",
			Address: "12 Palm Road",
			City:    "Pune",
			State:   "Maharashtra",
			Contact: "9876543210",
			Email:   "office@lotushigh.edu",
		},
		{
			Name:    "Riverside Public School",
			Address: "48 Bund Garden Road",
			City:    "Pune",
			State:   "Maharashtra",
			Contact: "9822001133",
			Email:   "admissions@riverside.edu",
		},
		{
			Name:    "St. Mary's Convent",
			Address: "7 Residency Road",
			City:    "Bengaluru",
			State:   "Karnataka",
			Contact: "9900112233",
			Email:   "contact@stmarys.edu",
		},
		{
			Name:    "Greenfield Academy",
			Address: "221 Lake View Street",
			City:    "Mumbai",
			State:   "Maharashtra",
			Contact: "9811223344",
			Email:   "info@greenfield.edu",
		},
	}

	for i := range schools {
		if err := db.Create(&schools[i]).Error; err != nil {
			log.Fatal().Err(err).Str("name", schools[i].Name).Msg("seed insert failed")
		}
		log.Info().Int64("id", schools[i].ID).Str("name", schools[i].Name).Msg("seeded school")
	}

	log.Info().Int("count", len(schools)).Msg("seeding done")
}
