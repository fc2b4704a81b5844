package controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-apac/mesh-backend/src/models"
)

type tokenBody struct {
	Token string `json:"token"`
}

func registerBody(email string) fiber.Map {
	return fiber.Map{
		"firstName": "Alex",
		"lastName":  "Thompson",
		"email":     email,
		"password":  "password123",
		"role":      "investor",
	}
}

func TestRegister(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/auth/register", "", registerBody("alex@investor.com"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var body tokenBody
	decodeBody(t, resp, &body)
	require.NotEmpty(t, body.Token)

	// The returned token authenticates the new user right away.
	resp = doJSON(t, app, "GET", "/api/auth/me", body.Token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var me models.User
	decodeBody(t, resp, &me)
	assert.Equal(t, "alex@investor.com", me.Email)
	assert.Equal(t, "Alex Thompson", me.Name)
	assert.Equal(t, models.RoleInvestor, me.Role)
	assert.Empty(t, me.Password)
}

func TestRegisterValidation(t *testing.T) {
	app := newTestApp(t)

	cases := []struct {
		name    string
		mutate  func(fiber.Map)
		message string
	}{
		{"missing email", func(m fiber.Map) { m["email"] = "" }, "All fields are required"},
		{"missing last name", func(m fiber.Map) { delete(m, "lastName") }, "All fields are required"},
		{"invalid role", func(m fiber.Map) { m["role"] = "admin" }, "Role must be startup or investor"},
		{"short password", func(m fiber.Map) { m["password"] = "abc" }, "Password must be at least 6 characters"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := registerBody("alex@investor.com")
			tc.mutate(body)
			resp := doJSON(t, app, "POST", "/api/auth/register", "", body)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tc.message, bodyMessage(t, resp))
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/auth/register", "", registerBody("alex@investor.com"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/auth/register", "", registerBody("alex@investor.com"))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "User already exists", bodyMessage(t, resp))
}

func TestLogin(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/auth/register", "", registerBody("alex@investor.com"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"email":    "alex@investor.com",
		"password": "password123",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body tokenBody
	decodeBody(t, resp, &body)
	assert.NotEmpty(t, body.Token)
}

func TestLoginInvalidCredentials(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/auth/register", "", registerBody("alex@investor.com"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Unknown email and wrong password produce the same message.
	resp = doJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"email":    "nobody@investor.com",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", bodyMessage(t, resp))

	resp = doJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"email":    "alex@investor.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", bodyMessage(t, resp))

	resp = doJSON(t, app, "POST", "/api/auth/login", "", fiber.Map{"email": "alex@investor.com"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Email and password are required", bodyMessage(t, resp))
}
