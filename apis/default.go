package apis

import (
	"campus_backend/data"
	. "campus_backend/models"

	"github.com/gofiber/fiber/v2"
)

// Index
//
//	@Produce	application/json
//	@Router		/ [get]
//	@Success	200	{object}	models.Map
func Index(c *fiber.Ctx) error {
	c.Set("Content-Type", "application/json")
	return c.Send(data.MetaData)
}

// GetConfig
//
//	@Summary	get global config
//	@Tags		Config
//	@Produce	json
//	@Router		/config [get]
//	@Success	200	{object}	models.Config
func GetConfig(c *fiber.Ctx) error {
	var configObject Config
	err := LoadConfig(&configObject)
	if err != nil {
		return err
	}
	return c.JSON(configObject)
}
