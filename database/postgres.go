package database

import (
	"fmt"

	"github.com/sociable/sociableapi/shared/zaplogger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectPostgres connects to a Postgres database and returns a GORM database object
func ConnectPostgres(dsn, pgLogLevel string) (*gorm.DB, error) {
	zaplogger.Info("Initializing Postgres")

	var logLevel logger.LogLevel
	switch pgLogLevel {
	case "silent":
		logLevel = logger.Silent
	case "error":
		logLevel = logger.Error
	case "warn":
		logLevel = logger.Warn
	case "info":
		logLevel = logger.Info
	default:
		logLevel = logger.Warn
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Postgres: %v", err)
	}
	zaplogger.Info("  * connected")

	return db, nil
}
