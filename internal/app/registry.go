package app

import (
	"net/http"

	"github.com/duchnb/ems-fullstack-app/internal/config"
	"github.com/duchnb/ems-fullstack-app/internal/department"
	"github.com/duchnb/ems-fullstack-app/internal/employee"
	"github.com/duchnb/ems-fullstack-app/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(router *gin.Engine, gormDB *gorm.DB, cfg *config.Config) {
	// --- Repositories ---
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)

	// --- Services ---
	departmentService := department.NewService(departmentRepo)
	employeeService := employee.NewService(employeeRepo, departmentRepo)

	// --- Handlers ---
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Routes Registration ---
	api := router.Group("/api")
	api.Use(middleware.RateLimitByIP(rate.Limit(cfg.Rate.PerSecond), cfg.Rate.Burst))
	{
		department.RegisterRoutes(api, departmentHandler)
		employee.RegisterRoutes(api, employeeHandler)
	}
}
