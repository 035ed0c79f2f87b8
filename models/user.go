package models

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"campus_backend/config"
	"campus_backend/utils"
	"campus_backend/utils/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type User struct {
	ID          int            `json:"id" gorm:"primaryKey"`
	JoinedTime  time.Time      `json:"joined_time" gorm:"autoCreateTime"`
	LastLogin   time.Time      `json:"last_login" gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
	TenantID    int            `json:"tenant_id" gorm:"uniqueIndex:idx_user_tenant_email,priority:1"`
	Email       string         `json:"email" gorm:"size:128;uniqueIndex:idx_user_tenant_email,priority:2"`
	Nickname    string         `json:"nickname" gorm:"size:128;default:'user'"`
	Password    string         `json:"-" gorm:"size:128"`
	Role        string         `json:"role" gorm:"size:32"`
	Status      string         `json:"status" gorm:"size:16;default:'active'"` // active or pending
	InviteCode  string         `json:"-" gorm:"size:32"`                       // code redeemed at provisioning time, empty for seeded accounts
	RegisterIP  string         `json:"-" gorm:"size:32"`
	LastLoginIP string         `json:"-" gorm:"size:32"`
	LoginIP     []string       `json:"-" gorm:"serializer:json"`
}

type Users []User

const (
	UserStatusActive  = "active"
	UserStatusPending = "pending"
)

/* roles */

const (
	RoleTenantAdmin = "tenant-admin"
	RoleTeacher     = "teacher"
	RoleStudent     = "student"
	RoleGuardian    = "guardian"
)

var ProvisionableRoles = []string{RoleTenantAdmin, RoleTeacher, RoleStudent, RoleGuardian}

var roleRank = map[string]int{
	RoleTenantAdmin: 3,
	RoleTeacher:     2,
	RoleStudent:     1,
	RoleGuardian:    1,
}

func IsProvisionableRole(role string) bool {
	return slices.Contains(ProvisionableRoles, role)
}

// RoleOutranks reports whether role a may mint codes for role b
func RoleOutranks(a, b string) bool {
	return roleRank[a] >= roleRank[b]
}

/* account provisioner */

// AccountDetails are the identity-forming fields of a redemption attempt.
// Tenant and role never appear here: they always come from the invite record.
type AccountDetails struct {
	Email    string
	Nickname string
	Password string // raw
	RemoteIP string
}

// ProvisionUser creates a user bound to the invite's tenant and role.
// The unique (tenant_id, email) index backs duplicate detection, so two
// concurrent attempts with the same email cannot both provision.
func ProvisionUser(invite *Invite, details AccountDetails) (*User, error) {
	if IsEmailInBlacklist(details.Email) {
		return nil, utils.ErrEmailBlacklisted
	}

	password, err := auth.MakePassword(details.Password)
	if err != nil {
		return nil, err
	}

	var configObject Config
	err = LoadConfig(&configObject)
	if err != nil {
		return nil, err
	}
	status := UserStatusActive
	if !configObject.AutoActivate {
		status = UserStatusPending
	}

	user := User{
		TenantID:   invite.TenantID,
		Email:      details.Email,
		Nickname:   details.Nickname,
		Password:   password,
		Role:       invite.Role,
		Status:     status,
		InviteCode: invite.Code,
		RegisterIP: details.RemoteIP,
	}
	user.UpdateIP(details.RemoteIP)

	err = DB.Create(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrEmailRegistered
		}
		return nil, err
	}
	return &user, nil
}

func (user *User) UpdateIP(ip string) {
	if ip == "" {
		return
	}
	user.LastLoginIP = ip
	if !slices.Contains(user.LoginIP, ip) {
		user.LoginIP = append(user.LoginIP, ip)
	}
}

/* request identity */

func GetUserID(c *fiber.Ctx) (int, error) {
	if config.Config.Mode == "dev" || config.Config.Mode == "test" {
		return 1, nil
	}

	// behind a gateway the consumer id arrives in a trusted header,
	// otherwise fall back to the bearer token
	if username := c.Get("X-Consumer-Username"); username != "" {
		id, err := strconv.Atoi(username)
		if err != nil {
			return 0, utils.Unauthorized()
		}
		return id, nil
	}

	tokenString := c.Get("Authorization")
	if tokenString == "" {
		tokenString = c.Cookies("access")
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")
	if tokenString == "" {
		return 0, utils.Unauthorized()
	}

	claims, err := auth.ParseToken(tokenString)
	if err != nil {
		return 0, utils.Unauthorized()
	}
	uid, ok := claims["uid"].(float64)
	if !ok {
		return 0, utils.Unauthorized()
	}
	return int(uid), nil
}

func GetUserCacheKey(userID int) string {
	return "campus_user:" + strconv.Itoa(userID)
}

const UserCacheExpire = 48 * time.Hour

// LoadUserByIDFromCache return value `err` is directly from DB.Take()
func LoadUserByIDFromCache(userID int, userPtr *User) error {
	cacheKey := GetUserCacheKey(userID)
	if config.GetCache(cacheKey, userPtr) != nil {
		err := DB.Take(userPtr, userID).Error
		if err != nil {
			return err
		}
		_ = config.SetCache(cacheKey, *userPtr, UserCacheExpire)
	}
	return nil
}

func DeleteUserCacheByID(userID int) {
	_ = config.DeleteCache(GetUserCacheKey(userID))
}

func LoadUserByID(userID int) (*User, error) {
	var user User
	err := LoadUserByIDFromCache(userID, &user)
	if err != nil {
		DeleteUserCacheByID(userID)
		return nil, err
	}
	return &user, nil
}

func LoadUser(c *fiber.Ctx) (*User, error) {
	userID, err := GetUserID(c)
	if err != nil {
		return nil, err
	}
	return LoadUserByID(userID)
}

func GetUserByRefreshToken(c *fiber.Ctx) (*User, error) {
	tokenString := c.Get("Authorization")
	if tokenString == "" { // token can be in either header or cookie
		tokenString = c.Cookies("refresh")
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	claims, err := auth.ParseToken(tokenString)
	if err != nil {
		return nil, utils.Unauthorized()
	}

	if tokenType, ok := claims["type"]; !ok || tokenType != "refresh" {
		return nil, utils.Unauthorized("refresh token invalid")
	}

	uid, ok := claims["uid"].(float64)
	if !ok {
		return nil, utils.Unauthorized()
	}

	var user User
	err = LoadUserByIDFromCache(int(uid), &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
