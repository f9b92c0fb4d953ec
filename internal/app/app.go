package app

import (
	"embed"
	"fmt"

	"github.com/duchnb/ems-fullstack-app/internal/config"
	"github.com/duchnb/ems-fullstack-app/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// BuildApp connects the database, applies migrations and registers every
// module's routes on the router.
func BuildApp(router *gin.Engine, cfg *config.Config) error {
	db, err := connection.ConnectGORMWithRetry(cfg.Database.DSN(), 5)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set migration dialect: %w", err)
	}
	if err := goose.Up(sqlDB, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	registerModules(router, db, cfg)
	return nil
}
