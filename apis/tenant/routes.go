package tenant

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(routes fiber.Router) {
	routes.Get("/tenants", ListTenants)
	routes.Get("/tenants/:id", GetTenant)
}
