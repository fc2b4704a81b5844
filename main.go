package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/mesh-apac/mesh-backend/src/config"
	"github.com/mesh-apac/mesh-backend/src/lib"
	"github.com/mesh-apac/mesh-backend/src/routes"
	"github.com/mesh-apac/mesh-backend/src/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading configuration", "error", err)
		os.Exit(1)
	}

	log := lib.NewLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	lib.ConfigureAuth(cfg.JWTSecret, cfg.TokenTTL)

	ctx := context.Background()

	switch cfg.StoreBackend {
	case config.BackendMemory:
		s, _ := store.NewMemoryStore()
		store.Use(s)
		log.Info("using in-memory store")
	default:
		db, err := lib.ConnectDB(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			log.Error("connecting to MongoDB", "error", err)
			os.Exit(1)
		}
		if err := lib.EnsureIndexes(ctx, db); err != nil {
			log.Error("creating indexes", "error", err)
			os.Exit(1)
		}
		store.Use(store.NewMongoStore(db))
		log.Info("connected to MongoDB", "database", cfg.MongoDB)
	}

	if cfg.SeedDemoData {
		if err := store.SeedDemoData(ctx, store.Current); err != nil {
			log.Error("seeding demo data", "error", err)
			os.Exit(1)
		}
		log.Info("seeded demo data")
	}

	app := fiber.New()

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New())
	corsConfig := cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, x-auth-token",
	}
	if cfg.AllowedOrigins != "" {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	app.Use(cors.New(corsConfig))

	// Register routes
	routes.AuthRoutes(app)
	routes.UserRoutes(app)
	routes.StartupRoutes(app)
	routes.ConnectionRoutes(app)
	routes.ProposalRoutes(app)
	routes.PostRoutes(app)
	routes.NotificationRoutes(app)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("MESH API is running")
	})

	log.Info("server listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
