package apis

import (
	"campus_backend/apis/account"
	"campus_backend/apis/invite"
	"campus_backend/apis/tenant"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

func RegisterRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/api")
	})
	// docs
	app.Get("/docs", func(c *fiber.Ctx) error {
		return c.Redirect("/docs/index.html")
	})
	app.Get("/docs/*", swagger.HandlerDefault)

	// meta
	routes := app.Group("/api")
	routes.Get("/", Index)
	routes.Get("/config", GetConfig)

	account.RegisterRoutes(routes)
	invite.RegisterRoutes(routes)
	tenant.RegisterRoutes(routes)
}
