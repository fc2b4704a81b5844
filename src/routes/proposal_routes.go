package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mesh-apac/mesh-backend/src/controllers"
	"github.com/mesh-apac/mesh-backend/src/middleware"
	"github.com/mesh-apac/mesh-backend/src/models"
)

// ProposalRoutes sets up the investment proposal lifecycle. The :id GET
// is registered last so /sent and /received match first.
func ProposalRoutes(app *fiber.App) {
	proposal := app.Group("/api/investment-proposals", middleware.ProtectRoute)

	proposal.Post("/", middleware.RequireRole(models.RoleInvestor), controllers.CreateProposal)
	proposal.Get("/sent", middleware.RequireRole(models.RoleInvestor), controllers.GetSentProposals)
	proposal.Get("/received", middleware.RequireRole(models.RoleStartup), controllers.GetReceivedProposals)
	proposal.Put("/:id/accept", middleware.RequireRole(models.RoleStartup), controllers.AcceptProposal)
	proposal.Put("/:id/decline", middleware.RequireRole(models.RoleStartup), controllers.DeclineProposal)
	proposal.Get("/:id", controllers.GetProposalByID)
}
