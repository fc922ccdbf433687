package router

import (
	authsvc "aaharly-backend/internal/application/auth"
	vendorsvc "aaharly-backend/internal/application/vendor"
	"aaharly-backend/internal/config"
	"aaharly-backend/internal/constants"
	"aaharly-backend/internal/infrastructure/database"
	authhandler "aaharly-backend/internal/interfaces/handlers/auth"
	healthhandler "aaharly-backend/internal/interfaces/handlers/health"
	navhandler "aaharly-backend/internal/interfaces/handlers/nav"
	vendorhandler "aaharly-backend/internal/interfaces/handlers/vendors"
	"aaharly-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type gormDBPinger struct {
	db *gorm.DB
}

func (g *gormDBPinger) Ping() error {
	if g == nil || g.db == nil {
		return nil
	}
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// CreateApp builds the Fiber app with the full middleware chain and all route
// registration. DB is optional (nil when DATABASE_URL is unset, e.g. tests);
// vendor login and vendor routes need it.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
		DevPassword:   cfg.DevPassword,
	}))

	sessionCfg := middleware.SessionConfig{
		Secret:            cfg.SessionSecret,
		RedisURL:          cfg.RedisURL,
		AllowCrossSiteDev: cfg.AllowCrossSiteDev,
		IsProduction:      cfg.Env == "production",
	}
	sessionHandler, rdb, err := middleware.Session(sessionCfg)
	if err != nil {
		return nil, nil, nil, err
	}
	app.Use(sessionHandler)
	app.Use(middleware.HealthMarker(rdb))
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	hh := &healthhandler.Handlers{
		Rdb:            rdb,
		HealthAdminKey: cfg.HealthAdminKey,
	}
	app.Get("/", hh.Root)
	app.Get("/reset", hh.Reset)
	app.Get("/health/json", hh.JSON)
	app.Get("/health/errors", hh.Errors)

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		var errDB error
		db, errDB = database.Open(cfg.DatabaseURL)
		if errDB != nil {
			return nil, nil, nil, errDB
		}
		if errDB = database.AutoMigrate(db); errDB != nil {
			return nil, nil, nil, errDB
		}
		hh.DB = &gormDBPinger{db: db}
	}

	identity := &authsvc.Service{}
	var vendorService *vendorsvc.Service
	if db != nil {
		vendorService = &vendorsvc.Service{DB: db}
		identity.Vendors = vendorService
	}

	authHandlers := &authhandler.Handlers{
		Auth:               identity,
		Tokens:             &authsvc.TokenBridge{Rdb: rdb},
		Rdb:                rdb,
		Config:             sessionCfg,
		AllowImpersonation: cfg.AllowImpersonation,
	}
	authGroup := app.Group("/api/v1/auth")
	authGroup.Post("/login", authHandlers.Login)
	authGroup.Get("/me", authHandlers.Me)
	authGroup.Delete("/logout", authHandlers.Logout)
	authGroup.Post("/switch-role",
		middleware.RequireAuth(),
		middleware.AuthorizePermission(constants.ImpersonateRoles),
		authHandlers.SwitchRole)

	navHandlers := &navhandler.Handlers{}
	navGroup := app.Group("/api/v1/nav", middleware.RequireAuth())
	navGroup.Get("/menu", navHandlers.Menu)
	navGroup.Get("/landing", navHandlers.Landing)

	if vendorService != nil {
		vh := &vendorhandler.Handlers{Service: vendorService}
		vendorGroup := app.Group("/api/v1/vendors", middleware.RequireAuth())
		vendorGroup.Get("/profile", vh.Profile)
		vendorGroup.Patch("/profile", middleware.AuthorizePermission(constants.UpdateVendorProfile), vh.UpdateProfile)
		vendorGroup.Get("/", middleware.AuthorizePermission(constants.ManageVendors), vh.List)
		vendorGroup.Patch("/:id/status", middleware.AuthorizePermission(constants.ManageVendors), vh.SetStatus)
	}

	return app, db, rdb, nil
}
