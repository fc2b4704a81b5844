package controllers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mesh-apac/mesh-backend/src/lib"
	"github.com/mesh-apac/mesh-backend/src/models"
	"github.com/mesh-apac/mesh-backend/src/store"
)

// CreateOrUpdateStartupProfile upserts the authenticated startup's
// company profile.
func CreateOrUpdateStartupProfile(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	var body struct {
		StartupName   string  `json:"startupName"`
		Location      string  `json:"location"`
		Industry      string  `json:"industry"`
		Description   string  `json:"description"`
		FundingNeeded float64 `json:"fundingNeeded"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}
	if body.StartupName == "" || body.Location == "" || body.Industry == "" || body.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("All profile fields are required"))
	}
	if body.FundingNeeded < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Funding needed cannot be negative"))
	}

	profile := models.StartupProfile{
		User:          user.Id,
		StartupName:   body.StartupName,
		Location:      body.Location,
		Industry:      body.Industry,
		Description:   body.Description,
		FundingNeeded: body.FundingNeeded,
	}

	updated, err := store.Current.Profiles.Upsert(c.Context(), &profile)
	if err != nil {
		slog.Error("upserting startup profile", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	return c.JSON(updated)
}

// GetOwnStartupProfile returns the authenticated startup's profile.
func GetOwnStartupProfile(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	profile, err := store.Current.Profiles.FindByUser(c.Context(), user.Id)
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Startup profile not found"))
		}
		slog.Error("finding startup profile", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	return c.JSON(profile)
}

// GetAllStartupProfiles returns every startup profile.
func GetAllStartupProfiles(c *fiber.Ctx) error {
	profiles, err := store.Current.Profiles.FindAll(c.Context())
	if err != nil {
		slog.Error("listing startup profiles", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
	if profiles == nil {
		profiles = []models.StartupProfile{}
	}
	return c.JSON(profiles)
}

// GetStartupProfileByID returns a startup profile by its id.
func GetStartupProfileByID(c *fiber.Ctx) error {
	profileID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Profile not found"))
	}

	profile, err := store.Current.Profiles.FindByID(c.Context(), profileID)
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Profile not found"))
		}
		slog.Error("finding startup profile", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	return c.JSON(profile)
}
