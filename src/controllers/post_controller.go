package controllers

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mesh-apac/mesh-backend/src/lib"
	"github.com/mesh-apac/mesh-backend/src/models"
	"github.com/mesh-apac/mesh-backend/src/store"
)

// GetFeedPosts returns posts authored by the authenticated user and by
// the counterpart users of their accepted connections, newest first.
func GetFeedPosts(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	authors := []primitive.ObjectID{user.Id}
	if user.Role == models.RoleInvestor {
		connections, err := store.Current.Connections.FindByInvestor(c.Context(), user.Id, models.StatusAccepted)
		if err != nil {
			slog.Error("finding connections for feed", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
		}
		for _, conn := range connections {
			authors = append(authors, conn.Startup)
		}
	} else {
		connections, err := store.Current.Connections.FindByStartup(c.Context(), user.Id, models.StatusAccepted)
		if err != nil {
			slog.Error("finding connections for feed", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
		}
		for _, conn := range connections {
			authors = append(authors, conn.Investor)
		}
	}

	posts, err := store.Current.Posts.FindByAuthors(c.Context(), authors)
	if err != nil {
		slog.Error("finding feed posts", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	dtos := []models.PostDto{}
	for _, post := range posts {
		author, err := store.Current.Users.FindByID(c.Context(), post.Author)
		if err != nil {
			slog.Error("finding post author", "post", post.Id.Hex(), "error", err)
			continue
		}
		dtos = append(dtos, models.PostDto{
			ID:        post.Id,
			Author:    author.PostAuthor(),
			Content:   post.Content,
			Image:     post.Image,
			CreatedAt: post.CreatedAt,
			UpdatedAt: post.UpdatedAt,
		})
	}

	return c.JSON(dtos)
}

// CreatePost publishes an update from the authenticated user.
func CreatePost(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	var body struct {
		Content string `json:"content"`
		Image   string `json:"image"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}
	if body.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Content is required"))
	}

	now := time.Now()
	post := models.Post{
		Author:    user.Id,
		Content:   body.Content,
		Image:     body.Image,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := store.Current.Posts.Insert(c.Context(), &post); err != nil {
		slog.Error("creating post", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Failed to create post"))
	}

	return c.Status(fiber.StatusCreated).JSON(models.PostDto{
		ID:        post.Id,
		Author:    user.PostAuthor(),
		Content:   post.Content,
		Image:     post.Image,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	})
}

// DeletePost deletes a post by ID if the authenticated user is the author.
func DeletePost(c *fiber.Ctx) error {
	postID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid post ID"))
	}

	user := c.Locals("user").(models.User)

	post, err := store.Current.Posts.FindByID(c.Context(), postID)
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Post not found"))
		}
		slog.Error("finding post", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	if post.Author != user.Id {
		return c.Status(fiber.StatusForbidden).JSON(lib.MessageResponse("You are not authorized to delete this post"))
	}

	if err := store.Current.Posts.Delete(c.Context(), postID); err != nil {
		slog.Error("deleting post", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Failed to delete post"))
	}

	return c.JSON(lib.MessageResponse("Post deleted successfully"))
}
