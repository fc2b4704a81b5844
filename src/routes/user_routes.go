package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mesh-apac/mesh-backend/src/controllers"
	"github.com/mesh-apac/mesh-backend/src/middleware"
	"github.com/mesh-apac/mesh-backend/src/models"
)

func UserRoutes(app *fiber.App) {
	user := app.Group("/api/users", middleware.ProtectRoute)

	user.Put("/profile", controllers.UpdateProfile)
	user.Get("/startups", middleware.RequireRole(models.RoleInvestor), controllers.ListStartups)
	user.Get("/:id", controllers.GetPublicProfile)
}
