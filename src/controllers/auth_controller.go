package controllers

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/mesh-apac/mesh-backend/src/lib"
	"github.com/mesh-apac/mesh-backend/src/models"
	"github.com/mesh-apac/mesh-backend/src/store"
)

// Register handles user registration: validates input, checks for
// duplicates, hashes the password and returns a signed token.
func Register(c *fiber.Ctx) error {

	var userData struct {
		FirstName string      `json:"firstName"`
		LastName  string      `json:"lastName"`
		Email     string      `json:"email"`
		Password  string      `json:"password"`
		Role      models.Role `json:"role"`
	}

	if err := c.BodyParser(&userData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	if userData.FirstName == "" || userData.LastName == "" || userData.Email == "" || userData.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("All fields are required"))
	}

	if !userData.Role.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Role must be startup or investor"))
	}

	if len(userData.Password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Password must be at least 6 characters"))
	}

	if _, err := store.Current.Users.FindByEmail(c.Context(), userData.Email); err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("User already exists"))
	} else if err != store.ErrNotFound {
		slog.Error("checking existing user", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(userData.Password), 11)
	if err != nil {
		slog.Error("hashing password", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	newUser := models.User{
		FirstName: userData.FirstName,
		LastName:  userData.LastName,
		Name:      userData.FirstName + " " + userData.LastName,
		Email:     userData.Email,
		Password:  string(hashedPassword),
		Role:      userData.Role,
		CreatedAt: time.Now(),
	}

	if err := store.Current.Users.Insert(c.Context(), &newUser); err != nil {
		if err == store.ErrDuplicate {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("User already exists"))
		}
		slog.Error("creating user", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	token, err := lib.GenerateJWT(newUser.Id)
	if err != nil {
		slog.Error("generating token", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
	})
}

// Login authenticates a user by email and password and returns a token.
func Login(c *fiber.Ctx) error {

	var loginData struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&loginData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	if loginData.Email == "" || loginData.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Email and password are required"))
	}

	user, err := store.Current.Users.FindByEmail(c.Context(), loginData.Email)
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid credentials"))
		}
		slog.Error("finding user", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(loginData.Password)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid credentials"))
	}

	token, err := lib.GenerateJWT(user.Id)
	if err != nil {
		slog.Error("generating token", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	return c.JSON(fiber.Map{
		"token": token,
	})
}

// GetCurrentUser returns the currently authenticated user's data
func GetCurrentUser(c *fiber.Ctx) error {
	user := c.Locals("user")
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Not authenticated"))
	}
	return c.JSON(user)
}
