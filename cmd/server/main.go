// Package main is the entry point for the MyNunny API server.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"mynunny/internal/config"
	"mynunny/internal/repositories"
	"mynunny/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	if cfg.IsProduction() && os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET must be set in production")
	}

	if err := repositories.InitDB(cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer repositories.CloseDB()

	// Start from a cold cache so stale listings never survive a deploy.
	if repositories.CacheService != nil {
		if err := repositories.CacheService.FlushAll(context.Background()); err != nil {
			log.Printf("failed to flush cache on startup: %v", err)
		}
	}

	// Expired OTP rows are dead weight; sweep them at boot and on a timer.
	otpRepo := repositories.NewOTPRepository(repositories.DB)
	if err := otpRepo.DeleteExpired(); err != nil {
		log.Printf("failed to sweep expired OTPs: %v", err)
	}
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			if err := otpRepo.DeleteExpired(); err != nil {
				log.Printf("failed to sweep expired OTPs: %v", err)
			}
		}
	}()

	// Periodic connection pool stats
	go func() {
		sqlDB, err := repositories.DB.DB()
		if err != nil {
			return
		}
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			stats := sqlDB.Stats()
			log.Printf("DB Stats: Open=%d, Idle=%d, InUse=%d, WaitCount=%d, WaitDuration=%s",
				stats.OpenConnections, stats.Idle, stats.InUse, stats.WaitCount, stats.WaitDuration)
		}
	}()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowCredentials: true,
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Brute-force protection on the credential endpoints
	app.Use("/api/auth/register", rateLimit(5, time.Minute))
	app.Use("/api/auth/login", rateLimit(5, time.Minute))
	app.Use("/api/auth/forgot-password", rateLimit(3, time.Minute))

	routes.SetupRoutes(app, cfg)

	log.Printf("MyNunny API listening on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

func rateLimit(max int, window time.Duration) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	})
}
