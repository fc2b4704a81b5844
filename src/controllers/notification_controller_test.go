package controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-apac/mesh-backend/src/models"
)

func TestAcceptConnectionNotifiesInvestor(t *testing.T) {
	app := newTestApp(t)
	_, investorToken := addUser(t, models.RoleInvestor, "alex@investor.com", "Alex Thompson")
	startup, startupToken := addUser(t, models.RoleStartup, "tech@innovate.com", "TechInnovate")

	connect(t, app, investorToken, startupToken, startup)

	resp := doJSON(t, app, "GET", "/api/notifications", investorToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var notifications []models.NotificationDto
	decodeBody(t, resp, &notifications)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationConnectionAccepted, notifications[0].Type)
	require.NotNil(t, notifications[0].RelatedUser)
	assert.Equal(t, "TechInnovate", notifications[0].RelatedUser.Name)
}

func TestMarkNotificationAsRead(t *testing.T) {
	app := newTestApp(t)
	_, investorToken := addUser(t, models.RoleInvestor, "alex@investor.com", "Alex Thompson")
	startup, startupToken := addUser(t, models.RoleStartup, "tech@innovate.com", "TechInnovate")

	connect(t, app, investorToken, startupToken, startup)

	resp := doJSON(t, app, "GET", "/api/notifications", investorToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var notifications []models.NotificationDto
	decodeBody(t, resp, &notifications)
	require.Len(t, notifications, 1)
	require.False(t, notifications[0].Read)

	id := notifications[0].ID.Hex()

	// Only the recipient can mark their notification read.
	resp = doJSON(t, app, "PUT", "/api/notifications/"+id+"/read", startupToken, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, "PUT", "/api/notifications/"+id+"/read", investorToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var marked models.Notification
	decodeBody(t, resp, &marked)
	assert.True(t, marked.Read)

	resp = doJSON(t, app, "PUT", "/api/notifications/not-a-hex-id/read", investorToken, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
