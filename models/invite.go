package models

import (
	"errors"
	"time"

	"campus_backend/config"
	"campus_backend/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Invite is a limited-use registration code. It is the only shared mutable
// resource of the provisioning core: used_count may only be incremented by
// ConsumeInvite and decremented by ReleaseInvite, both single-statement
// conditional updates, so the ceiling holds across processes.
type Invite struct {
	ID        int        `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time  `json:"created_at"`
	TenantID  int        `json:"tenant_id" gorm:"index"`
	Code      string     `json:"code" gorm:"uniqueIndex;size:32"`
	Role      string     `json:"role" gorm:"size:32"`
	MaxUses   int        `json:"max_uses" gorm:"not null;default:1"`
	UsedCount int        `json:"used_count" gorm:"not null;default:0"`
	IsActive  bool       `json:"is_active" gorm:"not null;default:true"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"` // set once, never cleared: revocation is terminal
	ExpiresAt *time.Time `json:"expires_at,omitempty"` // nil means no expiry
	CreatedBy int        `json:"created_by"`
}

type Invites []Invite

const (
	InviteStatusActive    = "active"
	InviteStatusExpired   = "expired"
	InviteStatusExhausted = "exhausted"
	InviteStatusRevoked   = "revoked"
)

// redeemablePredicate is the single source of truth for "may this code be
// consumed". It takes one argument: the evaluation time.
const redeemablePredicate = "is_active = true AND revoked_at IS NULL" +
	" AND (expires_at IS NULL OR expires_at > ?) AND used_count < max_uses"

// Status derives the display label from the same fields the redeemable
// predicate reads. It is never stored.
func (invite *Invite) Status() string {
	if !invite.IsActive || invite.RevokedAt != nil {
		return InviteStatusRevoked
	}
	if invite.ExpiresAt != nil && !time.Now().Before(*invite.ExpiresAt) {
		return InviteStatusExpired
	}
	if invite.UsedCount >= invite.MaxUses {
		return InviteStatusExhausted
	}
	return InviteStatusActive
}

func (invite *Invite) Redeemable() bool {
	return invite.Status() == InviteStatusActive
}

/* issuance */

// CreateInvite persists a new invite under the code uniqueness constraint,
// regenerating the code a bounded number of times on collision.
func CreateInvite(tenantID int, role string, maxUses int, expiresAt *time.Time, createdBy int) (*Invite, error) {
	for i := 0; i < config.Config.InviteIssueMaxRetry; i++ {
		code, err := utils.GenerateInviteCode(config.Config.InviteCodeLength)
		if err != nil {
			return nil, err
		}
		invite := Invite{
			TenantID:  tenantID,
			Code:      code,
			Role:      role,
			MaxUses:   maxUses,
			IsActive:  true,
			ExpiresAt: expiresAt,
			CreatedBy: createdBy,
		}
		err = DB.Create(&invite).Error
		if err == nil {
			return &invite, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}
	return nil, utils.InternalServerError("failed to allocate a unique invitation code")
}

func LoadInvites(tenantID, offset, size int) (Invites, error) {
	invites := Invites{}
	err := DB.Where("tenant_id = ?", tenantID).
		Order("id desc").Offset(offset).Limit(size).
		Find(&invites).Error
	return invites, err
}

// DeactivateInvite revokes a code. revoked_at is only ever set, never
// cleared, so a row whose is_active is later flipped back by hand still
// fails the redeemable predicate.
func DeactivateInvite(inviteID, tenantID int) (*Invite, error) {
	result := DB.Model(&Invite{}).
		Where("id = ? AND tenant_id = ?", inviteID, tenantID).
		Updates(map[string]any{
			"is_active":  false,
			"revoked_at": gorm.Expr("COALESCE(revoked_at, ?)", time.Now()),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var invite Invite
	err := DB.Take(&invite, inviteID).Error
	if err != nil {
		return nil, err
	}
	return &invite, nil
}

/* atomic consume */

// ConsumeInvite reserves one use of the code, or reports why it could not.
// The check and the increment are a single UPDATE statement, so no
// interleaving of concurrent calls can push used_count past max_uses.
//
// The row is read before the increment, never after: everything
// provisioning needs from it (tenant, role, code) is immutable, and every
// storage error is therefore raised before a slot was consumed. That is
// what makes the caller's retry on ErrStorageUnavailable safe.
func ConsumeInvite(code string) (*Invite, error) {
	var invite Invite
	err := DB.Take(&invite, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrInviteCodeInvalid
		}
		utils.Logger.Error("invite lookup failed", zap.Error(err))
		return nil, utils.ErrStorageUnavailable
	}

	result := DB.Model(&Invite{}).
		Where("id = ? AND "+redeemablePredicate, invite.ID, time.Now()).
		Update("used_count", gorm.Expr("used_count + 1"))
	if result.Error != nil {
		utils.Logger.Error("invite consume failed", zap.Error(result.Error))
		return nil, utils.ErrStorageUnavailable
	}
	if result.RowsAffected == 0 {
		return nil, classifyConsumeFailure(code)
	}
	// used_count in the returned snapshot predates the increment
	return &invite, nil
}

func classifyConsumeFailure(code string) error {
	var invite Invite
	err := DB.Take(&invite, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrInviteCodeInvalid
		}
		utils.Logger.Error("invite classify failed", zap.Error(err))
		return utils.ErrStorageUnavailable
	}
	switch invite.Status() {
	case InviteStatusRevoked:
		// internally logged, externally identical to an unknown code
		utils.Logger.Info("redeem attempt on revoked invite", zap.Int("invite_id", invite.ID))
		return utils.ErrInviteCodeInvalid
	case InviteStatusExpired:
		return utils.ErrInviteExpired
	case InviteStatusExhausted:
		return utils.ErrInviteExhausted
	default:
		// the row looks redeemable again, so the update itself must have
		// failed transiently; the caller may retry
		return utils.ErrStorageUnavailable
	}
}

// ReleaseInvite gives back one reserved use after a provisioning failure.
// It only ever decrements a count this process just incremented, guarded
// against underflow.
func ReleaseInvite(invite *Invite) error {
	result := DB.Model(&Invite{}).
		Where("id = ? AND used_count > 0", invite.ID).
		Update("used_count", gorm.Expr("used_count - 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("invite release found no reserved use")
	}
	return nil
}

/* redemption */

// RedeemInvite exchanges a code for a provisioned account: reserve a slot,
// provision, release on failure. Only the reservation is retried, and only
// when the storage layer reported it could not be attempted at all.
func RedeemInvite(code string, details AccountDetails) (*User, *Invite, error) {
	attemptID := uuid.New().String()

	var (
		invite *Invite
		err    error
	)
	for i := 0; i < config.Config.RedeemStorageMaxRetry; i++ {
		invite, err = ConsumeInvite(code)
		if !errors.Is(err, utils.ErrStorageUnavailable) {
			break
		}
	}
	if err != nil {
		return nil, nil, err
	}

	user, err := ProvisionUser(invite, details)
	if err != nil {
		if releaseErr := ReleaseInvite(invite); releaseErr != nil {
			utils.Logger.Error("invite release failed",
				zap.String("attempt_id", attemptID),
				zap.Int("invite_id", invite.ID),
				zap.Error(releaseErr))
		}
		return nil, nil, err
	}

	utils.Logger.Info("invite redeemed",
		zap.String("attempt_id", attemptID),
		zap.Int("invite_id", invite.ID),
		zap.Int("tenant_id", invite.TenantID),
		zap.String("role", invite.Role),
		zap.Int("user_id", user.ID))
	return user, invite, nil
}
