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

const maxConnectionMessageLen = 500

// SendConnectionRequest creates a connection request from the
// authenticated investor to a startup. A pair may only ever hold one
// connection record, whatever its status.
func SendConnectionRequest(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	var body struct {
		StartupID string `json:"startupId"`
		Message   string `json:"message"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}
	if body.StartupID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Startup ID is required"))
	}
	if len(body.Message) > maxConnectionMessageLen {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Message cannot exceed 500 characters"))
	}

	startupID, err := primitive.ObjectIDFromHex(body.StartupID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid startup ID format"))
	}

	startup, err := store.Current.Users.FindByID(c.Context(), startupID)
	if err != nil || startup.Role != models.RoleStartup {
		if err != nil && err != store.ErrNotFound {
			slog.Error("finding startup", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
		}
		return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Startup not found"))
	}

	// Duplicates are rejected outright regardless of status, not merged.
	if _, err := store.Current.Connections.FindByPair(c.Context(), user.Id, startupID, ""); err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Connection request already exists"))
	} else if err != store.ErrNotFound {
		slog.Error("checking existing connection", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	now := time.Now()
	newRequest := models.Connection{
		Investor:  user.Id,
		Startup:   startupID,
		Status:    models.StatusPending,
		Message:   body.Message,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := store.Current.Connections.Insert(c.Context(), &newRequest); err != nil {
		if err == store.ErrDuplicate {
			// The unique pair index caught a racing duplicate.
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Connection request already exists"))
		}
		slog.Error("creating connection request", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Failed to send connection request"))
	}

	return c.Status(fiber.StatusCreated).JSON(newRequest)
}

// GetPendingConnections returns the startup's pending requests, each
// enriched with the investor's public profile.
func GetPendingConnections(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	connections, err := store.Current.Connections.FindByStartup(c.Context(), user.Id, models.StatusPending)
	if err != nil {
		slog.Error("finding pending connections", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	response := []models.ConnectionWithInvestor{}
	for _, conn := range connections {
		enriched, err := withInvestor(c, conn)
		if err != nil {
			slog.Error("finding investor for connection", "connection", conn.Id.Hex(), "error", err)
			continue
		}
		response = append(response, enriched)
	}

	return c.JSON(response)
}

// GetAcceptedConnections returns accepted connections for either role,
// enriched with the counterpart's public profile.
func GetAcceptedConnections(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	if user.Role == models.RoleStartup {
		connections, err := store.Current.Connections.FindByStartup(c.Context(), user.Id, models.StatusAccepted)
		if err != nil {
			slog.Error("finding accepted connections", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
		}
		response := []models.ConnectionWithInvestor{}
		for _, conn := range connections {
			enriched, err := withInvestor(c, conn)
			if err != nil {
				slog.Error("finding investor for connection", "connection", conn.Id.Hex(), "error", err)
				continue
			}
			response = append(response, enriched)
		}
		return c.JSON(response)
	}

	connections, err := store.Current.Connections.FindByInvestor(c.Context(), user.Id, models.StatusAccepted)
	if err != nil {
		slog.Error("finding accepted connections", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
	response := []models.ConnectionWithStartup{}
	for _, conn := range connections {
		enriched, err := withStartup(c, conn)
		if err != nil {
			slog.Error("finding startup for connection", "connection", conn.Id.Hex(), "error", err)
			continue
		}
		response = append(response, enriched)
	}
	return c.JSON(response)
}

// GetSentConnections returns every connection the investor has initiated,
// any status, enriched with the startup's public profile.
func GetSentConnections(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	connections, err := store.Current.Connections.FindByInvestor(c.Context(), user.Id, "")
	if err != nil {
		slog.Error("finding sent connections", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	response := []models.ConnectionWithStartup{}
	for _, conn := range connections {
		enriched, err := withStartup(c, conn)
		if err != nil {
			slog.Error("finding startup for connection", "connection", conn.Id.Hex(), "error", err)
			continue
		}
		response = append(response, enriched)
	}
	return c.JSON(response)
}

// AcceptConnection moves a pending request to accepted. Only the startup
// the request addresses may do this, and only while it is still pending.
func AcceptConnection(c *fiber.Ctx) error {
	return transitionConnection(c, models.StatusAccepted)
}

// DeclineConnection moves a pending request to declined, under the same
// guards as AcceptConnection: declined is terminal too.
func DeclineConnection(c *fiber.Ctx) error {
	return transitionConnection(c, models.StatusDeclined)
}

func transitionConnection(c *fiber.Ctx, to models.Status) error {
	requestID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid connection ID format"))
	}

	user := c.Locals("user").(models.User)

	request, err := store.Current.Connections.FindByID(c.Context(), requestID)
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Connection request not found"))
		}
		slog.Error("finding connection request", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	if request.Startup != user.Id {
		return c.Status(fiber.StatusForbidden).JSON(lib.MessageResponse("Not authorized to update this connection"))
	}

	if request.Status != models.StatusPending {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("This request has already been processed"))
	}

	updated, err := store.Current.Connections.Transition(c.Context(), requestID, to)
	if err != nil {
		if err == store.ErrNotFound {
			// Lost a race with another transition since the read above.
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("This request has already been processed"))
		}
		slog.Error("updating connection request", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Failed to update connection request"))
	}

	if to == models.StatusAccepted {
		notifyConnectionAccepted(c, updated)
	}

	return c.JSON(updated)
}

func withInvestor(c *fiber.Ctx, conn models.Connection) (models.ConnectionWithInvestor, error) {
	investor, err := store.Current.Users.FindByID(c.Context(), conn.Investor)
	if err != nil {
		return models.ConnectionWithInvestor{}, err
	}
	return models.ConnectionWithInvestor{
		ID:        conn.Id,
		Investor:  investor.PublicInvestor(),
		Startup:   conn.Startup,
		Status:    conn.Status,
		Message:   conn.Message,
		CreatedAt: conn.CreatedAt,
		UpdatedAt: conn.UpdatedAt,
	}, nil
}

func withStartup(c *fiber.Ctx, conn models.Connection) (models.ConnectionWithStartup, error) {
	startup, err := store.Current.Users.FindByID(c.Context(), conn.Startup)
	if err != nil {
		return models.ConnectionWithStartup{}, err
	}
	return models.ConnectionWithStartup{
		ID:        conn.Id,
		Investor:  conn.Investor,
		Startup:   startup.PublicStartup(),
		Status:    conn.Status,
		Message:   conn.Message,
		CreatedAt: conn.CreatedAt,
		UpdatedAt: conn.UpdatedAt,
	}, nil
}

// notifyConnectionAccepted tells the investor their request was accepted.
// Notification writes are best effort and never fail the transition.
func notifyConnectionAccepted(c *fiber.Ctx, conn *models.Connection) {
	now := time.Now()
	notification := models.Notification{
		Recipient:   conn.Investor,
		Type:        models.NotificationConnectionAccepted,
		RelatedUser: conn.Startup,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := store.Current.Notifications.Insert(c.Context(), &notification); err != nil {
		slog.Error("creating notification", "error", err)
	}
}
