package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mesh-apac/mesh-backend/src/controllers"
	"github.com/mesh-apac/mesh-backend/src/middleware"
)

func NotificationRoutes(app *fiber.App) {
	notification := app.Group("/api/notifications", middleware.ProtectRoute)

	notification.Get("/", controllers.GetUserNotifications)
	notification.Put("/:id/read", controllers.MarkNotificationAsRead)
}
