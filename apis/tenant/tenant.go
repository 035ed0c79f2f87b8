package tenant

import (
	. "campus_backend/models"
	. "campus_backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ListTenantRequest struct {
	Offset int `json:"offset" query:"offset" default:"0" validate:"min=0"`
	Size   int `json:"size" query:"size" default:"30" validate:"min=1,max=100"`
}

// ListTenants godoc
//
//	@Summary	list active tenants
//	@Tags		tenant
//	@Produce	json
//	@Router		/tenants [get]
//	@Success	200	{array}	models.Tenant
func ListTenants(c *fiber.Ctx) error {
	var query ListTenantRequest
	err := ValidateQuery(c, &query)
	if err != nil {
		return err
	}

	tenants := []Tenant{}
	err = DB.Where("status = ?", TenantStatusActive).
		Order("id asc").Offset(query.Offset).Limit(query.Size).
		Find(&tenants).Error
	if err != nil {
		return err
	}
	return c.JSON(tenants)
}

// GetTenant godoc
//
//	@Summary	get a tenant by id
//	@Tags		tenant
//	@Produce	json
//	@Router		/tenants/{id} [get]
//	@Param		id	path		int	true	"tenant id"
//	@Success	200	{object}	models.Tenant
//	@Failure	404	{object}	utils.HttpError
func GetTenant(c *fiber.Ctx) error {
	tenantID, err := c.ParamsInt("id")
	if err != nil {
		return BadRequest("invalid tenant id")
	}
	tenant, err := LoadTenantByID(tenantID)
	if err != nil {
		return err
	}
	return c.JSON(tenant)
}
