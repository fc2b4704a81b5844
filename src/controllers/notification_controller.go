package controllers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mesh-apac/mesh-backend/src/lib"
	"github.com/mesh-apac/mesh-backend/src/models"
	"github.com/mesh-apac/mesh-backend/src/store"
)

// GetUserNotifications returns the authenticated user's notifications,
// newest first, with the related user's public data attached.
func GetUserNotifications(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	notifications, err := store.Current.Notifications.FindByRecipient(c.Context(), user.Id)
	if err != nil {
		slog.Error("finding notifications", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	response := []models.NotificationDto{}
	for _, notification := range notifications {
		dto := models.NotificationDto{
			ID:              notification.Id,
			Recipient:       notification.Recipient,
			Type:            notification.Type,
			RelatedProposal: notification.RelatedProposal,
			Read:            notification.Read,
			CreatedAt:       notification.CreatedAt,
			UpdatedAt:       notification.UpdatedAt,
		}

		if !notification.RelatedUser.IsZero() {
			related, err := store.Current.Users.FindByID(c.Context(), notification.RelatedUser)
			if err == nil {
				author := related.PostAuthor()
				dto.RelatedUser = &author
			} else if err != store.ErrNotFound {
				slog.Error("finding related user", "error", err)
			}
		}

		response = append(response, dto)
	}

	return c.JSON(response)
}

// MarkNotificationAsRead marks one of the user's notifications as read.
func MarkNotificationAsRead(c *fiber.Ctx) error {
	notificationID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid notification ID format"))
	}

	user := c.Locals("user").(models.User)

	notification, err := store.Current.Notifications.MarkRead(c.Context(), notificationID, user.Id)
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Notification not found"))
		}
		slog.Error("marking notification read", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	return c.JSON(notification)
}
