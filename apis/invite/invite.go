package invite

import (
	"errors"
	"time"

	. "campus_backend/models"
	. "campus_backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// IssueInvite godoc
//
//	@Summary		issue an invitation code
//	@Description	mint a limited-use registration code for a role within the caller's tenant
//	@Tags			invite
//	@Accept			json
//	@Produce		json
//	@Router			/invites [post]
//	@Param			json	body		IssueInviteRequest	true	"json"
//	@Success		201		{object}	IssueInviteResponse
//	@Failure		400		{object}	utils.HttpError	"invalid tenant, role or limits"
//	@Failure		403		{object}	utils.HttpError	"issuer may not mint this role"
func IssueInvite(c *fiber.Ctx) error {
	var body IssueInviteRequest
	err := ValidateBody(c, &body)
	if err != nil {
		return err
	}

	issuer, err := LoadUser(c)
	if err != nil {
		return err
	}

	tenant, err := LoadTenantByID(body.TenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BadRequest("tenant not found")
		}
		return err
	}
	if !tenant.IsActive() {
		return BadRequest("tenant is not active")
	}

	// issuers act only inside their own tenant, need staff privileges, and
	// can never mint a code for a role above their own
	if issuer.TenantID != body.TenantID {
		return Forbidden()
	}
	if issuer.Role != RoleTenantAdmin && issuer.Role != RoleTeacher {
		return Forbidden()
	}
	if !RoleOutranks(issuer.Role, body.Role) {
		return Forbidden("cannot issue an invitation for a more privileged role")
	}

	expiresAt := time.Now().AddDate(0, 0, *body.ExpiresInDays)
	invite, err := CreateInvite(body.TenantID, body.Role, *body.MaxUses, &expiresAt, issuer.ID)
	if err != nil {
		return err
	}

	issuedCounter.Inc()
	return c.Status(201).JSON(IssueInviteResponse{
		InviteID:  invite.ID,
		Code:      invite.Code,
		TenantID:  invite.TenantID,
		Role:      invite.Role,
		MaxUses:   invite.MaxUses,
		ExpiresAt: invite.ExpiresAt,
	})
}

// ListInvites godoc
//
//	@Summary	list invitation codes of a tenant
//	@Tags		invite
//	@Produce	json
//	@Router		/invites [get]
//	@Param		tenant_id	query		int	false	"tenant id, defaults to the caller's tenant"
//	@Success	200			{array}		InviteResponse
//	@Failure	403			{object}	utils.HttpError
func ListInvites(c *fiber.Ctx) error {
	var query ListInviteRequest
	err := ValidateQuery(c, &query)
	if err != nil {
		return err
	}

	caller, err := LoadUser(c)
	if err != nil {
		return err
	}
	if caller.Role != RoleTenantAdmin && caller.Role != RoleTeacher {
		return Forbidden()
	}
	if query.TenantID == 0 {
		query.TenantID = caller.TenantID
	}
	if query.TenantID != caller.TenantID {
		return Forbidden()
	}

	invites, err := LoadInvites(query.TenantID, query.Offset, query.Size)
	if err != nil {
		return err
	}

	responses := make([]InviteResponse, 0, len(invites))
	for i := range invites {
		responses = append(responses, MakeInviteResponse(&invites[i]))
	}
	return c.JSON(responses)
}

// RevokeInvite godoc
//
//	@Summary		revoke an invitation code
//	@Description	deactivation is terminal: a revoked code never becomes redeemable again
//	@Tags			invite
//	@Produce		json
//	@Router			/invites/{id} [delete]
//	@Param			id	path		int	true	"invite id"
//	@Success		200	{object}	InviteResponse
//	@Failure		403	{object}	utils.HttpError
//	@Failure		404	{object}	utils.HttpError
func RevokeInvite(c *fiber.Ctx) error {
	inviteID, err := c.ParamsInt("id")
	if err != nil {
		return BadRequest("invalid invite id")
	}

	caller, err := LoadUser(c)
	if err != nil {
		return err
	}
	if caller.Role != RoleTenantAdmin && caller.Role != RoleTeacher {
		return Forbidden()
	}

	var invite Invite
	err = DB.Take(&invite, "id = ? AND tenant_id = ?", inviteID, caller.TenantID).Error
	if err != nil {
		return err
	}
	// teachers may only revoke codes they issued themselves
	if caller.Role != RoleTenantAdmin && invite.CreatedBy != caller.ID {
		return Forbidden()
	}

	revoked, err := DeactivateInvite(inviteID, caller.TenantID)
	if err != nil {
		return err
	}
	return c.JSON(MakeInviteResponse(revoked))
}
