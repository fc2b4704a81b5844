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

// CreateProposal creates an investment proposal from the authenticated
// investor to a startup. Requires an accepted connection between the
// pair; multiple proposals per pair are allowed.
func CreateProposal(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	var body struct {
		StartupID            string  `json:"startupId"`
		FundingAmount        float64 `json:"fundingAmount"`
		EquityPercentage     float64 `json:"equityPercentage"`
		AdditionalConditions string  `json:"additionalConditions"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid request body"))
	}
	if body.StartupID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Startup ID is required"))
	}
	if body.FundingAmount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Funding amount must be a positive number"))
	}
	// Zero equity is rejected outright: it would make the implied
	// valuation undefined.
	if body.EquityPercentage <= 0 || body.EquityPercentage > 100 {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Equity percentage must be between 0 and 100"))
	}

	startupID, err := primitive.ObjectIDFromHex(body.StartupID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("Invalid startup ID format"))
	}

	if _, err := store.Current.Connections.FindByPair(c.Context(), user.Id, startupID, models.StatusAccepted); err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse(
				"You can only send proposals to startups with whom you have an accepted connection"))
		}
		slog.Error("checking accepted connection", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	now := time.Now()
	proposal := models.InvestmentProposal{
		Investor:             user.Id,
		Startup:              startupID,
		FundingAmount:        body.FundingAmount,
		EquityPercentage:     body.EquityPercentage,
		AdditionalConditions: body.AdditionalConditions,
		Status:               models.StatusPending,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := store.Current.Proposals.Insert(c.Context(), &proposal); err != nil {
		slog.Error("creating proposal", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Failed to create proposal"))
	}

	notifyProposal(c, &proposal, models.NotificationProposalReceived, proposal.Startup, proposal.Investor)

	dto, err := proposalDto(c, &proposal)
	if err != nil {
		slog.Error("enriching proposal", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
	return c.Status(fiber.StatusCreated).JSON(dto)
}

// GetSentProposals returns the investor's proposals, newest first.
func GetSentProposals(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	proposals, err := store.Current.Proposals.FindByInvestor(c.Context(), user.Id)
	if err != nil {
		slog.Error("finding sent proposals", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
	return c.JSON(proposalDtos(c, proposals))
}

// GetReceivedProposals returns the startup's proposals, newest first.
func GetReceivedProposals(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	proposals, err := store.Current.Proposals.FindByStartup(c.Context(), user.Id)
	if err != nil {
		slog.Error("finding received proposals", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
	return c.JSON(proposalDtos(c, proposals))
}

// GetProposalByID returns a single proposal to either of its parties.
func GetProposalByID(c *fiber.Ctx) error {
	proposalID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Proposal not found"))
	}

	user := c.Locals("user").(models.User)

	proposal, err := store.Current.Proposals.FindByID(c.Context(), proposalID)
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Proposal not found"))
		}
		slog.Error("finding proposal", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	if proposal.Investor != user.Id && proposal.Startup != user.Id {
		return c.Status(fiber.StatusForbidden).JSON(lib.MessageResponse("Not authorized to view this proposal"))
	}

	dto, err := proposalDto(c, proposal)
	if err != nil {
		slog.Error("enriching proposal", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
	return c.JSON(dto)
}

// AcceptProposal moves a pending proposal to accepted. Only the startup
// the proposal addresses may do this.
func AcceptProposal(c *fiber.Ctx) error {
	return transitionProposal(c, models.StatusAccepted)
}

// DeclineProposal moves a pending proposal to declined.
func DeclineProposal(c *fiber.Ctx) error {
	return transitionProposal(c, models.StatusDeclined)
}

func transitionProposal(c *fiber.Ctx, to models.Status) error {
	proposalID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Proposal not found"))
	}

	user := c.Locals("user").(models.User)

	proposal, err := store.Current.Proposals.FindByID(c.Context(), proposalID)
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Proposal not found"))
		}
		slog.Error("finding proposal", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}

	if proposal.Startup != user.Id {
		return c.Status(fiber.StatusForbidden).JSON(lib.MessageResponse("Not authorized to update this proposal"))
	}

	if proposal.Status != models.StatusPending {
		return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("This proposal has already been processed"))
	}

	updated, err := store.Current.Proposals.Transition(c.Context(), proposalID, to)
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusBadRequest).JSON(lib.MessageResponse("This proposal has already been processed"))
		}
		slog.Error("updating proposal", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Failed to update proposal"))
	}

	notificationType := models.NotificationProposalAccepted
	if to == models.StatusDeclined {
		notificationType = models.NotificationProposalDeclined
	}
	notifyProposal(c, updated, notificationType, updated.Investor, updated.Startup)

	dto, err := proposalDto(c, updated)
	if err != nil {
		slog.Error("enriching proposal", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(lib.MessageResponse("Server error"))
	}
	return c.JSON(dto)
}

func proposalDto(c *fiber.Ctx, proposal *models.InvestmentProposal) (models.ProposalDto, error) {
	investor, err := store.Current.Users.FindByID(c.Context(), proposal.Investor)
	if err != nil {
		return models.ProposalDto{}, err
	}
	startup, err := store.Current.Users.FindByID(c.Context(), proposal.Startup)
	if err != nil {
		return models.ProposalDto{}, err
	}
	return models.ProposalDto{
		ID:                   proposal.Id,
		Investor:             investor.PublicInvestor(),
		Startup:              startup.PublicStartup(),
		FundingAmount:        proposal.FundingAmount,
		EquityPercentage:     proposal.EquityPercentage,
		AdditionalConditions: proposal.AdditionalConditions,
		Status:               proposal.Status,
		ImpliedValuation:     proposal.ImpliedValuation(),
		CreatedAt:            proposal.CreatedAt,
		UpdatedAt:            proposal.UpdatedAt,
	}, nil
}

func proposalDtos(c *fiber.Ctx, proposals []models.InvestmentProposal) []models.ProposalDto {
	dtos := []models.ProposalDto{}
	for i := range proposals {
		dto, err := proposalDto(c, &proposals[i])
		if err != nil {
			slog.Error("enriching proposal", "proposal", proposals[i].Id.Hex(), "error", err)
			continue
		}
		dtos = append(dtos, dto)
	}
	return dtos
}

func notifyProposal(c *fiber.Ctx, proposal *models.InvestmentProposal, t models.NotificationType, recipient, related primitive.ObjectID) {
	now := time.Now()
	notification := models.Notification{
		Recipient:       recipient,
		Type:            t,
		RelatedUser:     related,
		RelatedProposal: proposal.Id,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := store.Current.Notifications.Insert(c.Context(), &notification); err != nil {
		slog.Error("creating notification", "error", err)
	}
}
