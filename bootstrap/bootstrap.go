package bootstrap

import (
	"aaharly-backend/internal/config"
	"aaharly-backend/internal/interfaces/router"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New is the composition root: load config, build the app and its connections.
func New() (*fiber.App, *config.Config, *gorm.DB, *redis.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, nil, err
	}
	app, db, rdb, err := router.CreateApp(cfg)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return app, cfg, db, rdb, nil
}
