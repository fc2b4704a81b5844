package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mesh-apac/mesh-backend/src/controllers"
	"github.com/mesh-apac/mesh-backend/src/middleware"
)

func PostRoutes(app *fiber.App) {
	post := app.Group("/api/posts", middleware.ProtectRoute)

	post.Post("/", controllers.CreatePost)
	post.Get("/feed", controllers.GetFeedPosts)
	post.Delete("/:id", controllers.DeletePost)
}
