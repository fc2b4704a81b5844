package controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-apac/mesh-backend/src/models"
)

func TestCreateAndDeletePost(t *testing.T) {
	app := newTestApp(t)
	_, startupToken := addUser(t, models.RoleStartup, "tech@innovate.com", "TechInnovate")
	_, investorToken := addUser(t, models.RoleInvestor, "alex@investor.com", "Alex Thompson")

	resp := doJSON(t, app, "POST", "/api/posts", startupToken, fiber.Map{
		"content": "We just closed our pilot with a regional logistics firm.",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var post models.PostDto
	decodeBody(t, resp, &post)
	assert.Equal(t, "TechInnovate", post.Author.Name)

	resp = doJSON(t, app, "POST", "/api/posts", startupToken, fiber.Map{"content": ""})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Content is required", bodyMessage(t, resp))

	// Only the author may delete.
	resp = doJSON(t, app, "DELETE", "/api/posts/"+post.ID.Hex(), investorToken, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, "DELETE", "/api/posts/"+post.ID.Hex(), startupToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, "DELETE", "/api/posts/"+post.ID.Hex(), startupToken, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestFeedShowsAcceptedCounterpartsOnly(t *testing.T) {
	app := newTestApp(t)
	startup, startupToken := addUser(t, models.RoleStartup, "tech@innovate.com", "TechInnovate")
	_, otherStartupToken := addUser(t, models.RoleStartup, "green@energy.com", "GreenEnergy")
	_, investorToken := addUser(t, models.RoleInvestor, "alex@investor.com", "Alex Thompson")

	connect(t, app, investorToken, startupToken, startup)

	for token, content := range map[string]string{
		startupToken:      "Connected startup update",
		otherStartupToken: "Unconnected startup update",
		investorToken:     "Investor update",
	} {
		resp := doJSON(t, app, "POST", "/api/posts", token, fiber.Map{"content": content})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, app, "GET", "/api/posts/feed", investorToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var feed []models.PostDto
	decodeBody(t, resp, &feed)

	contents := make([]string, 0, len(feed))
	for _, post := range feed {
		contents = append(contents, post.Content)
	}
	assert.ElementsMatch(t,
		[]string{"Connected startup update", "Investor update"}, contents)

	// The startup's feed mirrors the same connection.
	resp = doJSON(t, app, "GET", "/api/posts/feed", startupToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &feed)
	require.Len(t, feed, 2)

	// The unconnected startup only sees itself.
	resp = doJSON(t, app, "GET", "/api/posts/feed", otherStartupToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &feed)
	require.Len(t, feed, 1)
	assert.Equal(t, "Unconnected startup update", feed[0].Content)
}
