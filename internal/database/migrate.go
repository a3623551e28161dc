package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"quiz-dump/internal/logger"

	"go.uber.org/zap"
)

// RunMigrations executes every *.up.sql file of dir in lexical order. Oracle
// accepts one statement per Exec, so files are split on ';' line endings.
func RunMigrations(db *sql.DB, dir string) error {
	files, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("could not read migrations directory: %w", err)
	}

	l := logger.Get()
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".up.sql") {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, file.Name()))
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", file.Name(), err)
		}

		for i, stmt := range splitStatements(string(content)) {
			if _, err := db.Exec(stmt); err != nil {
				return fmt.Errorf("could not execute migration %s (statement %d): %w", file.Name(), i+1, err)
			}
		}

		l.Info("Executed migration", zap.String("file", file.Name()))
	}

	l.Info("Migrations completed successfully")
	return nil
}

func splitStatements(script string) []string {
	var stmts []string
	for _, part := range strings.Split(script, ";") {
		if s := strings.TrimSpace(part); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
