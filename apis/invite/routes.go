package invite

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(routes fiber.Router) {
	// issuance and administration, staff only
	routes.Post("/invites", IssueInvite)
	routes.Get("/invites", ListInvites)
	routes.Delete("/invites/:id", RevokeInvite)

	// public redemption
	routes.Post("/redeem", Redeem)
}
