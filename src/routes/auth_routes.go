package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mesh-apac/mesh-backend/src/controllers"
	"github.com/mesh-apac/mesh-backend/src/middleware"
)

func AuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	auth.Post("/register", controllers.Register)
	auth.Post("/login", controllers.Login)
	auth.Get("/me", middleware.ProtectRoute, controllers.GetCurrentUser)
}
