package invite

import (
	"time"

	"campus_backend/models"
)

// MaxUses and ExpiresInDays are pointers so that an explicit 0 in the body
// is rejected by validation instead of being rewritten to the default.
type IssueInviteRequest struct {
	TenantID      int    `json:"tenant_id" validate:"required"`
	Role          string `json:"role" validate:"required,oneof=tenant-admin teacher student guardian"`
	MaxUses       *int   `json:"max_uses" default:"1" validate:"required,min=1"`
	ExpiresInDays *int   `json:"expires_in_days" default:"30" validate:"required,min=1"`
}

type IssueInviteResponse struct {
	InviteID  int        `json:"invite_id"`
	Code      string     `json:"code"` // the only time the code is returned in full
	TenantID  int        `json:"tenant_id"`
	Role      string     `json:"role"`
	MaxUses   int        `json:"max_uses"`
	ExpiresAt *time.Time `json:"expires_at"`
}

type ListInviteRequest struct {
	TenantID int `json:"tenant_id" query:"tenant_id"` // defaults to the caller's tenant
	Offset   int `json:"offset" query:"offset" default:"0" validate:"min=0"`
	Size     int `json:"size" query:"size" default:"30" validate:"min=1,max=100"`
}

// InviteResponse adds the derived status label, computed from the invite
// fields on every request and never stored. Code shadows the stored value
// with a masked one: the full code leaves the service only once, in the
// issuance response.
type InviteResponse struct {
	models.Invite
	Code   string `json:"code"` // masked, e.g. "****3FJ9"
	Status string `json:"status" enums:"active,expired,exhausted,revoked"`
}

func MakeInviteResponse(invite *models.Invite) InviteResponse {
	return InviteResponse{
		Invite: *invite,
		Code:   maskCode(invite.Code),
		Status: invite.Status(),
	}
}

func maskCode(code string) string {
	if len(code) <= 4 {
		return code
	}
	return "****" + code[len(code)-4:]
}

type RedeemRequest struct {
	Code     string `json:"code" validate:"required,min=8,max=32"`
	Email    string `json:"email" validate:"required,email"`
	Nickname string `json:"nickname" validate:"omitempty,min=1,max=128"`
	Password string `json:"password" validate:"required,min=8" minLength:"8"`
}

type RedeemResponse struct {
	User    models.User `json:"user"`
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
	Message string      `json:"message"`
}
