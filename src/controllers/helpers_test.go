package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/mesh-apac/mesh-backend/src/lib"
	"github.com/mesh-apac/mesh-backend/src/middleware"
	"github.com/mesh-apac/mesh-backend/src/models"
	"github.com/mesh-apac/mesh-backend/src/routes"
	"github.com/mesh-apac/mesh-backend/src/store"
)

// newTestApp wires the full route surface against a fresh in-memory
// store, exactly as main does in memory mode.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	lib.ConfigureAuth("controller-test-secret", time.Hour)

	s, _ := store.NewMemoryStore()
	store.Use(s)

	app := fiber.New()
	routes.AuthRoutes(app)
	routes.UserRoutes(app)
	routes.StartupRoutes(app)
	routes.ConnectionRoutes(app)
	routes.ProposalRoutes(app)
	routes.PostRoutes(app)
	routes.NotificationRoutes(app)
	return app
}

// addUser inserts a user directly and returns it with a valid token.
func addUser(t *testing.T, role models.Role, email, name string) (models.User, string) {
	t.Helper()
	first, last, _ := strings.Cut(name, " ")
	user := models.User{
		FirstName: first,
		LastName:  last,
		Name:      name,
		Email:     email,
		Role:      role,
		Location:  "Singapore",
		CreatedAt: time.Now(),
	}
	require.NoError(t, store.Current.Users.Insert(context.Background(), &user))

	token, err := lib.GenerateJWT(user.Id)
	require.NoError(t, err)
	return user, token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(middleware.TokenHeader, token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func bodyMessage(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	decodeBody(t, resp, &body)
	return body.Message
}
