package account

import (
	"campus_backend/config"
	. "campus_backend/models"
	. "campus_backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetCurrentUser godoc
//
//	@Summary		get current user
//	@Tags			user
//	@Produce		json
//	@Router			/users/me [get]
//	@Success		200	{object}	User
//	@Failure		404	{object}	utils.HttpError	"User not found"
func GetCurrentUser(c *fiber.Ctx) error {
	user, err := LoadUser(c)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// ModifyUser godoc
//
//	@Summary		modify current user, need login
//	@Tags			user
//	@Produce		json
//	@Router			/users/me [put]
//	@Param			json	body		ModifyUserRequest	true	"json"
//	@Success		200		{object}	User
func ModifyUser(c *fiber.Ctx) error {
	var body ModifyUserRequest
	err := ValidateBody(c, &body)
	if err != nil {
		return err
	}

	userID, err := GetUserID(c)
	if err != nil {
		return err
	}

	var user User
	err = DB.Transaction(func(tx *gorm.DB) error {
		err = tx.Clauses(LockingClause).Take(&user, userID).Error
		if err != nil {
			return err
		}

		if body.Nickname != nil {
			user.Nickname = *body.Nickname
		}

		return tx.Save(&user).Error
	})
	if err != nil {
		return err
	}

	_ = config.SetCache(GetUserCacheKey(user.ID), user, UserCacheExpire)

	return c.JSON(user)
}
