package main

import (
	"github.com/duchnb/ems-fullstack-app/internal/app"
	"github.com/duchnb/ems-fullstack-app/internal/bootstrap"
	"github.com/duchnb/ems-fullstack-app/internal/config"
	"github.com/duchnb/ems-fullstack-app/internal/middleware"
	"github.com/duchnb/ems-fullstack-app/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()
	cfg := config.Load()

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.ContextLogger(logger),
	)

	if err := app.BuildApp(r, cfg); err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	auditLogger := bootstrap.NewStdoutAuditLogger()
	bootstrap.StartHTTPServer(r, cfg.Server, auditLogger)
}
