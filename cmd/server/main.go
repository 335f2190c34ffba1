package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/infrastructure/migration"
	infra "resume-builder/pkg/infrastructure"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	pool, err := infra.NewPool(ctx)
	if err != nil {
		log.Fatalf("database not available: %v", err)
	}
	defer pool.Close()

	if err := migration.RunMigrations(ctx, pool); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	app := fiber.New()

	h := httpadapter.NewHandler(
		repo.NewUsersRepo(pool),
		repo.NewResumesRepo(pool),
		[]byte(cfg.JWTSecret),
		cfg.TokenTTL,
	)
	h.RegisterRoutes(app)

	log.Printf("listening on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
