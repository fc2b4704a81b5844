package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mesh-apac/mesh-backend/src/lib"
	"github.com/mesh-apac/mesh-backend/src/models"
	"github.com/mesh-apac/mesh-backend/src/store"
)

// TokenHeader carries the opaque bearer token on every authenticated request.
const TokenHeader = "x-auth-token"

// ProtectRoute is a middleware that checks for a valid JWT token, authenticates the user, and attaches user data to the request context
func ProtectRoute(c *fiber.Ctx) error {

	token := c.Get(TokenHeader)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("No token, authorization denied"))
	}

	decoded, err := lib.VerifyJWT(token)
	if err != nil || decoded == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Token is not valid"))
	}

	userID, ok := decoded["id"].(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Token is not valid"))
	}

	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Token is not valid"))
	}

	user, err := store.Current.Users.FindByID(c.Context(), objectID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Token is not valid"))
	}

	user.Password = ""

	c.Locals("user", *user)

	return c.Next()
}

// RequireRole permits the request only when the authenticated user's role
// is in the allowed set. Must run after ProtectRoute.
func RequireRole(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := c.Locals("user").(models.User)
		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(
			lib.MessageResponse("Role (" + string(user.Role) + ") is not authorized to access this resource"))
	}
}
