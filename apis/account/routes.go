package account

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(routes fiber.Router) {
	// token
	routes.Post("/login", Login)
	routes.Get("/logout", Logout)
	routes.Post("/refresh", Refresh)

	// user info
	routes.Get("/users/me", GetCurrentUser)
	routes.Put("/users/me", ModifyUser)
}
