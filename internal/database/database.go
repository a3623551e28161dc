package database

import (
	"fmt"

	"quiz-dump/internal/logger"

	_ "github.com/godror/godror" // "godror" driver
	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // "oracle" driver
	"go.uber.org/zap"
)

// NewSQLXDB connects with the named driver ("oracle" for go-ora, "godror")
// and verifies the connection.
func NewSQLXDB(driver, dsn string) (*sqlx.DB, error) {
	if driver == "" {
		driver = "oracle"
	}
	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Oracle database (%s): %w", driver, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping Oracle database: %w", err)
	}

	logger.Get().Info("Connected to Oracle database", zap.String("driver", driver))
	return db, nil
}
