package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/formbuilder/internal/api/middleware"
	"github.com/linskybing/formbuilder/internal/api/routes"
	"github.com/linskybing/formbuilder/internal/application"
	"github.com/linskybing/formbuilder/internal/config"
	"github.com/linskybing/formbuilder/internal/config/db"
	"github.com/linskybing/formbuilder/internal/domain/audit"
	"github.com/linskybing/formbuilder/internal/domain/form"
	"github.com/linskybing/formbuilder/internal/domain/submission"
	"github.com/linskybing/formbuilder/internal/repository"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize database connection
	db.Init()

	// Auto migrate database schemas
	if err := db.DB.AutoMigrate(
		&form.Form{},
		&submission.FormSubmission{},
		&audit.AuditLog{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, db.DB)

	// daily audit retention sweep
	audit_service := application.NewAuditService(repository.NewRepositories(db.DB))
	go func() {
		for {
			if err := audit_service.CleanupOldLogs(config.AuditRetentionDays); err != nil {
				log.Printf("audit cleanup: %v", err)
			}
			time.Sleep(24 * time.Hour)
		}
	}()

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
