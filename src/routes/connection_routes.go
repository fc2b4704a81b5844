package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mesh-apac/mesh-backend/src/controllers"
	"github.com/mesh-apac/mesh-backend/src/middleware"
	"github.com/mesh-apac/mesh-backend/src/models"
)

// ConnectionRoutes sets up the connection lifecycle: investors send
// requests, startups accept or decline them, both sides list them.
func ConnectionRoutes(app *fiber.App) {
	connection := app.Group("/api/connections", middleware.ProtectRoute)

	connection.Post("/", middleware.RequireRole(models.RoleInvestor), controllers.SendConnectionRequest)
	connection.Get("/pending", middleware.RequireRole(models.RoleStartup), controllers.GetPendingConnections)
	connection.Get("/accepted", controllers.GetAcceptedConnections)
	connection.Get("/sent", middleware.RequireRole(models.RoleInvestor), controllers.GetSentConnections)
	connection.Put("/:id/accept", middleware.RequireRole(models.RoleStartup), controllers.AcceptConnection)
	connection.Put("/:id/decline", middleware.RequireRole(models.RoleStartup), controllers.DeclineConnection)
}
