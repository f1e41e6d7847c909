package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/wellsight/wellsight-backend/internal/platform/env"
	"github.com/wellsight/wellsight-backend/internal/platform/logger"
)

// PostgresService owns the gorm handle for the well data store. The
// schematic tables are a legacy engineering schema, so there is no
// auto-migration here: the schema is managed outside this service and
// queried by table name.
type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	host := env.Get("POSTGRES_HOST", "localhost", log)
	port := env.Get("POSTGRES_PORT", "5432", log)
	user := env.Get("POSTGRES_USER", "postgres", log)
	password := env.Get("POSTGRES_PASSWORD", "", log)
	name := env.Get("POSTGRES_NAME", "wellsight", log)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, name)

	serviceLog.Info("Connecting to Postgres...")
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		serviceLog.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	return &PostgresService{db: gdb, log: serviceLog}, nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
