package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"vpprealtech/server/config"
	"vpprealtech/server/internal/api"
	"vpprealtech/server/internal/auth"
	"vpprealtech/server/internal/content"
	"vpprealtech/server/internal/leads"
	"vpprealtech/server/internal/mailer"
	"vpprealtech/server/internal/models"
	"vpprealtech/server/internal/notify"
	"vpprealtech/server/internal/store"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		logger.Info("Loaded environment from .env")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}
	if cfg.Auth.JWTSecret == "" {
		logger.Fatal("JWT_SECRET is required")
	}

	users := store.NewCollection[models.User](cfg.Data.Dir, "users")
	projects := store.NewCollection[models.Listing](cfg.Data.Dir, "projects")
	mandates := store.NewCollection[models.Listing](cfg.Data.Dir, "mandates")
	blogs := store.NewCollection[models.Blog](cfg.Data.Dir, "blogs")
	leadRecords := store.NewCollection[models.Lead](cfg.Data.Dir, "leads")
	contacts := store.NewCollection[models.Contact](cfg.Data.Dir, "contacts")

	mailSvc := mailer.NewService(mailer.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}, logger)
	templates := mailer.NewTemplates(cfg.Notifications.WhatsAppNumber)

	dispatcher := notify.NewDispatcher(mailSvc, cfg.Notifications.QueueSize, logger)
	dispatcher.Start()
	defer dispatcher.Close()

	authMgr := auth.NewManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenExpiryHours)*time.Hour, users)
	projectSvc := content.NewListingService(projects, "proj", models.ProjectStatuses)
	mandateSvc := content.NewListingService(mandates, "mandate", models.MandateStatuses)
	blogSvc := content.NewBlogService(blogs)
	leadSvc := leads.NewService(leadRecords, projects, contacts, dispatcher, templates, cfg.Notifications.AdminEmail, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	handler := api.NewHandler(
		authMgr,
		projectSvc,
		mandateSvc,
		blogSvc,
		leadSvc,
		cfg.Uploads.Dir,
		cfg.Uploads.MaxFileSize,
		logger,
	)
	api.SetupRoutes(router, handler)
	router.Static("/uploads", cfg.Uploads.Dir)

	logger.Infof("Starting server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
