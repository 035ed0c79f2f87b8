package invite

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"campus_backend/config"
	"campus_backend/models"
	"campus_backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var app *fiber.App

func TestMain(m *testing.M) {
	_ = os.Setenv("MODE", "test")
	config.InitConfig()
	models.InitDB()

	models.DB.Create(&models.Tenant{ID: 1, Name: "Springfield Elementary", Status: models.TenantStatusActive})
	models.DB.Create(&models.Tenant{ID: 2, Name: "Closed Academy", Status: "suspended"})
	// in test mode every request acts as user 1
	models.DB.Create(&models.User{
		ID:       1,
		TenantID: 1,
		Email:    "admin@springfield.edu",
		Nickname: "admin",
		Role:     models.RoleTenantAdmin,
		Status:   models.UserStatusActive,
	})

	app = fiber.New(fiber.Config{ErrorHandler: utils.MyErrorHandler})
	RegisterRoutes(app.Group("/api"))

	os.Exit(m.Run())
}

func testRequest(t *testing.T, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var result map[string]any
	if len(data) > 0 {
		require.NoError(t, json.Unmarshal(data, &result))
	}
	return resp.StatusCode, result
}

func issueInvite(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	status, result := testRequest(t, "POST", "/api/invites", body)
	require.Equal(t, 201, status)
	require.NotEmpty(t, result["code"])
	return result
}

func setCallerRole(t *testing.T, role string) {
	t.Helper()
	require.NoError(t, models.DB.Model(&models.User{}).Where("id = ?", 1).Update("role", role).Error)
	models.DeleteUserCacheByID(1)
}

func TestIssueDefaults(t *testing.T) {
	result := issueInvite(t, map[string]any{"tenant_id": 1, "role": "student"})

	assert.EqualValues(t, 1, result["max_uses"])
	assert.EqualValues(t, 1, result["tenant_id"])
	assert.Equal(t, "student", result["role"])
	assert.NotEmpty(t, result["expires_at"], "default expiry of 30 days must be applied")
	assert.Len(t, result["code"], 20)
}

func TestIssueValidation(t *testing.T) {
	status, _ := testRequest(t, "POST", "/api/invites", map[string]any{
		"tenant_id": 1, "role": "student", "max_uses": -1,
	})
	assert.Equal(t, 400, status)

	status, _ = testRequest(t, "POST", "/api/invites", map[string]any{
		"tenant_id": 1, "role": "student", "expires_in_days": -1,
	})
	assert.Equal(t, 400, status)

	// an explicit zero is rejected, not silently replaced by the default
	status, _ = testRequest(t, "POST", "/api/invites", map[string]any{
		"tenant_id": 1, "role": "student", "max_uses": 0,
	})
	assert.Equal(t, 400, status)

	status, _ = testRequest(t, "POST", "/api/invites", map[string]any{
		"tenant_id": 1, "role": "student", "expires_in_days": 0,
	})
	assert.Equal(t, 400, status)

	status, _ = testRequest(t, "POST", "/api/invites", map[string]any{
		"tenant_id": 1, "role": "principal",
	})
	assert.Equal(t, 400, status)

	// suspended tenant
	status, _ = testRequest(t, "POST", "/api/invites", map[string]any{
		"tenant_id": 2, "role": "student",
	})
	assert.Equal(t, 400, status)

	// unknown tenant
	status, _ = testRequest(t, "POST", "/api/invites", map[string]any{
		"tenant_id": 999, "role": "student",
	})
	assert.Equal(t, 400, status)
}

func TestIssueRolePrivilege(t *testing.T) {
	setCallerRole(t, models.RoleTeacher)
	defer setCallerRole(t, models.RoleTenantAdmin)

	// a teacher may not mint codes above their own rank
	status, _ := testRequest(t, "POST", "/api/invites", map[string]any{
		"tenant_id": 1, "role": "tenant-admin",
	})
	assert.Equal(t, 403, status)

	status, _ = testRequest(t, "POST", "/api/invites", map[string]any{
		"tenant_id": 1, "role": "student",
	})
	assert.Equal(t, 201, status)
}

func TestIssueRequiresStaffRole(t *testing.T) {
	setCallerRole(t, models.RoleStudent)
	defer setCallerRole(t, models.RoleTenantAdmin)

	status, _ := testRequest(t, "POST", "/api/invites", map[string]any{
		"tenant_id": 1, "role": "student",
	})
	assert.Equal(t, 403, status)
}

func TestRedeemFlow(t *testing.T) {
	invite := issueInvite(t, map[string]any{"tenant_id": 1, "role": "teacher", "max_uses": 2})

	status, result := testRequest(t, "POST", "/api/redeem", map[string]any{
		"code":     invite["code"],
		"email":    "skinner@springfield.edu",
		"nickname": "Seymour",
		"password": "superintendent-chalmers",
	})
	require.Equal(t, 201, status)
	assert.NotEmpty(t, result["access"])
	assert.NotEmpty(t, result["refresh"])

	user, ok := result["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "teacher", user["role"])
	assert.EqualValues(t, 1, user["tenant_id"])
	assert.Equal(t, "skinner@springfield.edu", user["email"])
}

// client-supplied privilege fields are dead weight: provisioning only ever
// reads tenant and role from the invite record
func TestRedeemAntiSpoofing(t *testing.T) {
	invite := issueInvite(t, map[string]any{"tenant_id": 1, "role": "student"})

	status, result := testRequest(t, "POST", "/api/redeem", map[string]any{
		"code":      invite["code"],
		"email":     "nelson@springfield.edu",
		"password":  "haw-haw-haw-haw",
		"role":      "tenant-admin",
		"tenant_id": 999,
	})
	require.Equal(t, 201, status)

	user, ok := result["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "student", user["role"])
	assert.EqualValues(t, 1, user["tenant_id"])
}

func TestRedeemUnknownCode(t *testing.T) {
	status, result := testRequest(t, "POST", "/api/redeem", map[string]any{
		"code":     "QQQQQQQQQQQQQQQQQQQQ",
		"email":    "ghost@springfield.edu",
		"password": "does-not-matter",
	})
	assert.Equal(t, 404, status)
	assert.Equal(t, utils.ErrInviteCodeInvalid.Message, result["message"])
}

func TestRedeemExhaustedCode(t *testing.T) {
	invite := issueInvite(t, map[string]any{"tenant_id": 1, "role": "student", "max_uses": 1})

	status, _ := testRequest(t, "POST", "/api/redeem", map[string]any{
		"code":     invite["code"],
		"email":    "martin@springfield.edu",
		"password": "straight-a-student",
	})
	require.Equal(t, 201, status)

	status, result := testRequest(t, "POST", "/api/redeem", map[string]any{
		"code":     invite["code"],
		"email":    "database@springfield.edu",
		"password": "well-ackchually",
	})
	assert.Equal(t, 410, status)
	assert.Equal(t, utils.ErrInviteExhausted.Message, result["message"])
}

func TestRevokeThenRedeem(t *testing.T) {
	invite := issueInvite(t, map[string]any{"tenant_id": 1, "role": "guardian"})
	inviteID := int(invite["invite_id"].(float64))

	status, result := testRequest(t, "DELETE", "/api/invites/"+strconv.Itoa(inviteID), nil)
	require.Equal(t, 200, status)
	assert.Equal(t, models.InviteStatusRevoked, result["status"])
	assert.NotEqual(t, invite["code"], result["code"])

	// externally indistinguishable from an unknown code
	status, result = testRequest(t, "POST", "/api/redeem", map[string]any{
		"code":     invite["code"],
		"email":    "helen@springfield.edu",
		"password": "think-of-the-children",
	})
	assert.Equal(t, 404, status)
	assert.Equal(t, utils.ErrInviteCodeInvalid.Message, result["message"])
}

func TestListInvitesDerivedStatus(t *testing.T) {
	issueInvite(t, map[string]any{"tenant_id": 1, "role": "student"})

	req := httptest.NewRequest("GET", "/api/invites?size=100", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()
	require.Equal(t, 200, resp.StatusCode)

	var invites []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&invites))
	require.NotEmpty(t, invites)
	for _, invite := range invites {
		assert.Contains(t, []string{
			models.InviteStatusActive,
			models.InviteStatusExpired,
			models.InviteStatusExhausted,
			models.InviteStatusRevoked,
		}, invite["status"])
		assert.NotNil(t, invite["used_count"])
		assert.NotNil(t, invite["max_uses"])
	}
}

// the full code leaves the service exactly once, in the issuance response;
// listings only ever show a masked suffix
func TestListInvitesMasksCodes(t *testing.T) {
	issued := issueInvite(t, map[string]any{"tenant_id": 1, "role": "student"})
	fullCode := issued["code"].(string)

	req := httptest.NewRequest("GET", "/api/invites?size=100", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()
	require.Equal(t, 200, resp.StatusCode)

	var invites []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&invites))
	require.NotEmpty(t, invites)

	found := false
	for _, invite := range invites {
		code := invite["code"].(string)
		assert.NotEqual(t, fullCode, code)
		if code == "****"+fullCode[len(fullCode)-4:] &&
			int(invite["id"].(float64)) == int(issued["invite_id"].(float64)) {
			found = true
		}
	}
	assert.True(t, found)
}
