package controllers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mesh-apac/mesh-backend/src/lib"
	"github.com/mesh-apac/mesh-backend/src/models"
	"github.com/mesh-apac/mesh-backend/src/store"
)

// UpdateProfile updates the authenticated user's mutable profile fields.
// Identity fields (email, role, password) are not editable here.
func UpdateProfile(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	var body struct {
		FirstName       *string  `json:"firstName"`
		LastName        *string  `json:"lastName"`
		Avatar          *string  `json:"avatar"`
		Location        *string  `json:"location"`
		Bio             *string  `json:"bio"`
		Focus           *string  `json:"focus"`
		InvestmentRange *string  `json:"investmentRange"`
		Industry        *string  `json:"industry"`
		Description     *string  `json:"description"`
		FundingNeeded   *float64 `json:"fundingNeeded"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}

	fields := map[string]interface{}{}
	first, last := user.FirstName, user.LastName
	if body.FirstName != nil {
		first = *body.FirstName
		fields["firstName"] = first
	}
	if body.LastName != nil {
		last = *body.LastName
		fields["lastName"] = last
	}
	if body.FirstName != nil || body.LastName != nil {
		fields["name"] = first + " " + last
	}
	if body.Avatar != nil {
		fields["avatar"] = *body.Avatar
	}
	if body.Location != nil {
		fields["location"] = *body.Location
	}
	if body.Bio != nil {
		fields["bio"] = *body.Bio
	}
	if user.Role == models.RoleInvestor {
		if body.Focus != nil {
			fields["focus"] = *body.Focus
		}
		if body.InvestmentRange != nil {
			fields["investmentRange"] = *body.InvestmentRange
		}
	}
	if user.Role == models.RoleStartup {
		if body.Industry != nil {
			fields["industry"] = *body.Industry
		}
		if body.Description != nil {
			fields["description"] = *body.Description
		}
		if body.FundingNeeded != nil {
			if *body.FundingNeeded < 0 {
				return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Funding needed cannot be negative"))
			}
			fields["fundingNeeded"] = *body.FundingNeeded
		}
	}

	if len(fields) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("No profile fields to update"))
	}

	updated, err := store.Current.Users.UpdateProfile(c.Context(), user.Id, fields)
	if err != nil {
		slog.Error("updating profile", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	updated.Password = ""
	return c.JSON(updated)
}

// ListStartups returns every startup user as a public profile, for the
// investor browse view.
func ListStartups(c *fiber.Ctx) error {
	users, err := store.Current.Users.FindByRole(c.Context(), models.RoleStartup)
	if err != nil {
		slog.Error("listing startups", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	startups := []models.StartupPublic{}
	for i := range users {
		startups = append(startups, users[i].PublicStartup())
	}
	return c.JSON(startups)
}

// GetPublicProfile returns a user's public profile by id, shaped by the
// user's role.
func GetPublicProfile(c *fiber.Ctx) error {
	userID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid user ID format"))
	}

	user, err := store.Current.Users.FindByID(c.Context(), userID)
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("User not found"))
		}
		slog.Error("finding user", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	if user.Role == models.RoleInvestor {
		return c.JSON(user.PublicInvestor())
	}
	return c.JSON(user.PublicStartup())
}
