package account

import (
	"errors"

	. "campus_backend/models"
	. "campus_backend/utils"
	"campus_backend/utils/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Login godoc
//
//	@Summary		Login
//	@Description	Login with tenant, email and password, return jwt token
//	@Tags			token
//	@Accept			json
//	@Produce		json
//	@Router			/login [post]
//	@Param			json	body		LoginRequest	true	"json"
//	@Success		200		{object}	TokenResponse
//	@Failure		401		{object}	utils.HttpError
//	@Failure		404		{object}	utils.HttpError	"User Not Found"
func Login(c *fiber.Ctx) error {
	var body LoginRequest
	err := ValidateBody(c, &body)
	if err != nil {
		return err
	}

	var user User
	err = DB.Where("tenant_id = ? AND email = ?", body.TenantID, body.Email).Take(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("User Not Found")
		}
		return err
	}

	ok, err := auth.CheckPassword(body.Password, user.Password)
	if err != nil {
		return err
	}
	if !ok {
		return Unauthorized("password incorrect")
	}

	// update login time and ip
	user.UpdateIP(GetRealIP(c))
	err = DB.Save(&user).Error
	if err != nil {
		return err
	}

	access, refresh, err := auth.CreateToken(auth.TokenClaims{
		UserID:   user.ID,
		TenantID: user.TenantID,
		Role:     user.Role,
		Nickname: user.Nickname,
	})
	if err != nil {
		return err
	}

	return c.JSON(TokenResponse{
		Access:  access,
		Refresh: refresh,
		Message: "Login successful",
	})
}

// Logout
//
//	@Summary	Logout
//	@Description	Logout, clear jwt credential cache and return successful message
//	@Tags		token
//	@Produce	json
//	@Router		/logout [get]
//	@Success	200	{object}	utils.MessageResponse
func Logout(c *fiber.Ctx) error {
	userID, err := GetUserID(c)
	if err != nil {
		return err
	}

	DeleteUserCacheByID(userID)

	return c.JSON(MessageResponse{Message: "logout successful"})
}

// Refresh
//
//	@Summary	Refresh jwt token
//	@Description	Refresh jwt token with refresh token in header, login required
//	@Tags		token
//	@Produce	json
//	@Router		/refresh [post]
//	@Success	200	{object}	TokenResponse
func Refresh(c *fiber.Ctx) error {
	user, err := GetUserByRefreshToken(c)
	if err != nil {
		return err
	}

	// update login time and ip
	user.UpdateIP(GetRealIP(c))
	err = DB.Save(user).Error
	if err != nil {
		return err
	}

	access, refresh, err := auth.CreateToken(auth.TokenClaims{
		UserID:   user.ID,
		TenantID: user.TenantID,
		Role:     user.Role,
		Nickname: user.Nickname,
	})
	if err != nil {
		return err
	}
	return c.JSON(TokenResponse{
		Access:  access,
		Refresh: refresh,
		Message: "refresh successful",
	})
}
