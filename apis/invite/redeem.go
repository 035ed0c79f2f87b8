package invite

import (
	. "campus_backend/models"
	. "campus_backend/utils"
	"campus_backend/utils/auth"

	"github.com/gofiber/fiber/v2"
)

// Redeem godoc
//
//	@Summary		redeem an invitation code
//	@Description	consume one use of the code and provision an account; tenant and role
//	@Description	always come from the invite record, never from the request body
//	@Tags			invite
//	@Accept			json
//	@Produce		json
//	@Router			/redeem [post]
//	@Param			json	body		RedeemRequest	true	"json"
//	@Success		201		{object}	RedeemResponse
//	@Failure		404		{object}	utils.HttpError	"unknown or revoked code"
//	@Failure		409		{object}	utils.HttpError	"email already registered in this tenant"
//	@Failure		410		{object}	utils.HttpError	"code expired or exhausted"
//	@Failure		503		{object}	utils.HttpError	"storage unavailable, retry"
func Redeem(c *fiber.Ctx) error {
	if !redeemLimiter.Allow(GetRealIP(c)) {
		return TooManyRequests()
	}

	var body RedeemRequest
	err := ValidateBody(c, &body)
	if err != nil {
		return err
	}

	user, _, err := RedeemInvite(body.Code, AccountDetails{
		Email:    body.Email,
		Nickname: body.Nickname,
		Password: body.Password,
		RemoteIP: GetRealIP(c),
	})
	if err != nil {
		redeemFailureCounter.WithLabelValues(failureReason(err)).Inc()
		return err
	}
	redeemSuccessCounter.Inc()

	access, refresh, err := auth.CreateToken(auth.TokenClaims{
		UserID:   user.ID,
		TenantID: user.TenantID,
		Role:     user.Role,
		Nickname: user.Nickname,
	})
	if err != nil {
		return err
	}

	return c.Status(201).JSON(RedeemResponse{
		User:    *user,
		Access:  access,
		Refresh: refresh,
		Message: "register successful",
	})
}

func failureReason(err error) string {
	switch err {
	case ErrInviteCodeInvalid:
		return "invalid_code"
	case ErrInviteExpired:
		return "expired"
	case ErrInviteExhausted:
		return "exhausted"
	case ErrEmailRegistered:
		return "duplicate_account"
	case ErrEmailBlacklisted:
		return "email_blacklisted"
	case ErrStorageUnavailable:
		return "storage_unavailable"
	default:
		return "other"
	}
}
