package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"sonata/internal/config"
	"sonata/internal/database"
	"sonata/internal/mailer"
	"sonata/internal/middleware"
	"sonata/internal/modules/admin"
	"sonata/internal/modules/artist"
	"sonata/internal/modules/auth"
	jwtsvc "sonata/internal/pkg/jwt"
	"sonata/internal/repository"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	codeRepo := repository.NewVerificationCodeRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.SessionTTL, cfg.ActionTokenTTL)

	m := buildMailer(cfg)

	authService := auth.NewService(userRepo, artistRepo, codeRepo, j, m, cfg.VerifyCodeTTL)
	authHandler := auth.NewHandler(authService)

	artistService := artist.NewService(artistRepo, j, m, cfg.AdminEmail, cfg.PublicBaseURL)
	artistHandler := artist.NewHandler(artistService)

	adminService := admin.NewService(artistRepo, m)
	adminHandler := admin.NewHandler(adminService, j)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", health)

		// public
		authHandler.RegisterPublicRoutes(v1)
		artistHandler.RegisterPublicRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
		}
	}

	// one-time admin action links, authenticated by their signed tokens
	adminHandler.RegisterRoutes(r)

	log.Printf("sonata backend listening on :%s (smtp configured: %t)", cfg.Port, cfg.SMTPConfigured())
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func buildMailer(cfg *config.Config) mailer.Mailer {
	if !cfg.SMTPConfigured() {
		log.Println("SMTP not configured, using console mailer")
		return mailer.NewConsoleMailer()
	}

	m, err := mailer.NewSMTPMailer(mailer.SMTPConfig{
		Host:    cfg.SMTPHost,
		Port:    cfg.SMTPPort,
		User:    cfg.SMTPUser,
		Pass:    cfg.SMTPPass,
		From:    cfg.SMTPUser,
		Timeout: cfg.SMTPTimeout,
	})
	if err != nil {
		log.Fatalf("smtp mailer: %v", err)
	}
	return m
}
