package database

import (
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// Connect dispatches on the DSN shape: MySQL in production, PostgreSQL when
// given a postgres URL, SQLite (pure-Go driver) for anything else so local
// development and tests need no server.
func Connect(dsn string) (*gorm.DB, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://"):
		log.Info().Msg("connecting to PostgreSQL")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	case strings.Contains(dsn, "@tcp("):
		log.Info().Msg("connecting to MySQL")
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	}

	log.Info().Str("path", dsn).Msg("using SQLite")

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}
