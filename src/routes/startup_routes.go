package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mesh-apac/mesh-backend/src/controllers"
	"github.com/mesh-apac/mesh-backend/src/middleware"
	"github.com/mesh-apac/mesh-backend/src/models"
)

func StartupRoutes(app *fiber.App) {
	startup := app.Group("/api/startup", middleware.ProtectRoute)

	startup.Post("/profile", middleware.RequireRole(models.RoleStartup), controllers.CreateOrUpdateStartupProfile)
	startup.Get("/profile", middleware.RequireRole(models.RoleStartup), controllers.GetOwnStartupProfile)
	startup.Get("/profiles", controllers.GetAllStartupProfiles)
	startup.Get("/profile/:id", controllers.GetStartupProfileByID)
}
