package models

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"campus_backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestInvite(t *testing.T, maxUses int, expiresAt *time.Time) *Invite {
	t.Helper()
	invite, err := CreateInvite(1, RoleStudent, maxUses, expiresAt, 1)
	require.NoError(t, err)
	require.Equal(t, 0, invite.UsedCount)
	require.True(t, invite.Redeemable())
	return invite
}

func reloadInvite(t *testing.T, inviteID int) *Invite {
	t.Helper()
	var invite Invite
	require.NoError(t, DB.Take(&invite, inviteID).Error)
	return &invite
}

func details(email string) AccountDetails {
	return AccountDetails{
		Email:    email,
		Nickname: "new user",
		Password: "long-enough-password",
	}
}

func TestCreateInvite(t *testing.T) {
	expiresAt := time.Now().AddDate(0, 0, 30)
	invite := newTestInvite(t, 3, &expiresAt)

	assert.Len(t, invite.Code, 20)
	assert.Equal(t, 1, invite.TenantID)
	assert.Equal(t, RoleStudent, invite.Role)
	assert.Equal(t, InviteStatusActive, invite.Status())
}

// the ceiling invariant: for maxUses = N and K concurrent attempts, exactly
// min(N, K) succeed and the rest report exhaustion
func TestConsumeCeilingUnderConcurrency(t *testing.T) {
	for _, maxUses := range []int{1, 3, 10} {
		maxUses := maxUses
		t.Run(fmt.Sprintf("maxUses=%d", maxUses), func(t *testing.T) {
			invite := newTestInvite(t, maxUses, nil)

			const attempts = 50
			var (
				wg        sync.WaitGroup
				mu        sync.Mutex
				successes int
				exhausted int
				others    []error
			)
			for i := 0; i < attempts; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					_, err := ConsumeInvite(invite.Code)
					mu.Lock()
					defer mu.Unlock()
					switch err {
					case nil:
						successes++
					case utils.ErrInviteExhausted:
						exhausted++
					default:
						others = append(others, err)
					}
				}()
			}
			wg.Wait()

			assert.Empty(t, others)
			assert.Equal(t, maxUses, successes)
			assert.Equal(t, attempts-maxUses, exhausted)
			assert.Equal(t, maxUses, reloadInvite(t, invite.ID).UsedCount)
		})
	}
}

func TestNoDoubleSpend(t *testing.T) {
	invite := newTestInvite(t, 1, nil)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = ConsumeInvite(invite.Code)
		}(i)
	}
	wg.Wait()

	if results[0] == nil {
		assert.ErrorIs(t, results[1], utils.ErrInviteExhausted)
	} else {
		assert.NoError(t, results[1])
		assert.ErrorIs(t, results[0], utils.ErrInviteExhausted)
	}
	assert.Equal(t, 1, reloadInvite(t, invite.ID).UsedCount)
}

// a consume failure reported as retryable must mean no slot was reserved,
// otherwise the redeem retry loop would spend a second slot for one account
func TestConsumeStorageFailureConsumesNothing(t *testing.T) {
	invite := newTestInvite(t, 1, nil)

	healthy := DB
	broken, err := gorm.Open(sqlite.Open("file:brokenstore?mode=memory"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := broken.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	DB = broken
	_, err = ConsumeInvite(invite.Code)
	DB = healthy
	require.ErrorIs(t, err, utils.ErrStorageUnavailable)

	reloaded := reloadInvite(t, invite.ID)
	assert.Equal(t, 0, reloaded.UsedCount)
	assert.True(t, reloaded.Redeemable())
}

func TestExpiryIsAbsolute(t *testing.T) {
	soon := time.Now().Add(10 * time.Second)
	invite := newTestInvite(t, 10, &soon)

	// before the deadline a slot is granted
	_, err := ConsumeInvite(invite.Code)
	require.NoError(t, err)

	// push the deadline into the past: unredeemable regardless of used count
	past := time.Now().Add(-time.Second)
	require.NoError(t, DB.Model(&Invite{}).Where("id = ?", invite.ID).Update("expires_at", past).Error)

	_, err = ConsumeInvite(invite.Code)
	assert.ErrorIs(t, err, utils.ErrInviteExpired)
	assert.Equal(t, InviteStatusExpired, reloadInvite(t, invite.ID).Status())
	assert.Equal(t, 1, reloadInvite(t, invite.ID).UsedCount)
}

func TestRevocationIsTerminal(t *testing.T) {
	invite := newTestInvite(t, 5, nil)

	revoked, err := DeactivateInvite(invite.ID, invite.TenantID)
	require.NoError(t, err)
	assert.False(t, revoked.IsActive)
	require.NotNil(t, revoked.RevokedAt)
	assert.Equal(t, InviteStatusRevoked, revoked.Status())

	_, err = ConsumeInvite(invite.Code)
	assert.ErrorIs(t, err, utils.ErrInviteCodeInvalid)

	// even flipping is_active back by direct data manipulation does not
	// resurrect the code: revoked_at stays set
	require.NoError(t, DB.Model(&Invite{}).Where("id = ?", invite.ID).Update("is_active", true).Error)
	_, err = ConsumeInvite(invite.Code)
	assert.ErrorIs(t, err, utils.ErrInviteCodeInvalid)
	assert.Equal(t, 0, reloadInvite(t, invite.ID).UsedCount)
}

func TestDeactivateUnknownInvite(t *testing.T) {
	_, err := DeactivateInvite(99999, 1)
	assert.Error(t, err)
}

func TestUnknownCode(t *testing.T) {
	_, _, err := RedeemInvite("THISCODEDOESNOTEXIST", details("nobody@springfield.edu"))
	assert.ErrorIs(t, err, utils.ErrInviteCodeInvalid)
}

func TestRedeemRoundTrip(t *testing.T) {
	expiresAt := time.Now().AddDate(0, 0, 1)
	invite := newTestInvite(t, 2, &expiresAt)

	userA, _, err := RedeemInvite(invite.Code, details("lisa@springfield.edu"))
	require.NoError(t, err)
	userB, _, err := RedeemInvite(invite.Code, details("bart@springfield.edu"))
	require.NoError(t, err)

	assert.Equal(t, invite.TenantID, userA.TenantID)
	assert.Equal(t, invite.Role, userA.Role)
	assert.NotEqual(t, userA.ID, userB.ID)
	assert.Equal(t, 2, reloadInvite(t, invite.ID).UsedCount)
	assert.Equal(t, InviteStatusExhausted, reloadInvite(t, invite.ID).Status())

	_, _, err = RedeemInvite(invite.Code, details("milhouse@springfield.edu"))
	assert.ErrorIs(t, err, utils.ErrInviteExhausted)
}

// a provisioning failure must hand the reserved slot back
func TestCompensationOnDuplicateAccount(t *testing.T) {
	invite := newTestInvite(t, 2, nil)

	_, _, err := RedeemInvite(invite.Code, details("ned@springfield.edu"))
	require.NoError(t, err)
	require.Equal(t, 1, reloadInvite(t, invite.ID).UsedCount)

	_, _, err = RedeemInvite(invite.Code, details("ned@springfield.edu"))
	assert.ErrorIs(t, err, utils.ErrEmailRegistered)
	assert.Equal(t, 1, reloadInvite(t, invite.ID).UsedCount, "failed attempt must be net zero")

	// the released slot is still usable with different account details
	_, _, err = RedeemInvite(invite.Code, details("maude@springfield.edu"))
	assert.NoError(t, err)
	assert.Equal(t, 2, reloadInvite(t, invite.ID).UsedCount)
}

func TestReleaseNeverUnderflows(t *testing.T) {
	invite := newTestInvite(t, 1, nil)
	assert.Error(t, ReleaseInvite(invite))
	assert.Equal(t, 0, reloadInvite(t, invite.ID).UsedCount)
}

func TestProvisionedStatusFollowsConfig(t *testing.T) {
	invite := newTestInvite(t, 2, nil)

	user, _, err := RedeemInvite(invite.Code, details("rod@springfield.edu"))
	require.NoError(t, err)
	assert.Equal(t, UserStatusActive, user.Status)

	require.NoError(t, UpdateConfig(&Config{ID: 1, AutoActivate: false}))
	defer func() {
		_ = UpdateConfig(&Config{ID: 1, AutoActivate: true})
	}()

	user, _, err = RedeemInvite(invite.Code, details("todd@springfield.edu"))
	require.NoError(t, err)
	assert.Equal(t, UserStatusPending, user.Status)
}

func TestEmailBlacklistBlocksProvisioning(t *testing.T) {
	DB.Create(&EmailBlacklist{EmailDomain: "mailinator.com"})
	invite := newTestInvite(t, 1, nil)

	_, _, err := RedeemInvite(invite.Code, details("someone@mailinator.com"))
	assert.ErrorIs(t, err, utils.ErrEmailBlacklisted)
	assert.Equal(t, 0, reloadInvite(t, invite.ID).UsedCount, "blocked attempt must release the slot")
}
