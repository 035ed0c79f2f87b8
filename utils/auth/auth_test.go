package auth

import (
	"os"
	"testing"

	"campus_backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	_ = os.Setenv("MODE", "test")
	config.InitConfig()
	os.Exit(m.Run())
}

func TestPasswordRoundTrip(t *testing.T) {
	encrypted, err := MakePassword("correct horse battery staple")
	require.NoError(t, err)

	ok, err := CheckPassword("correct horse battery staple", encrypted)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CheckPassword("wrong password", encrypted)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTokenRoundTrip(t *testing.T) {
	access, refresh, err := CreateToken(TokenClaims{
		UserID:   42,
		TenantID: 7,
		Role:     "teacher",
		Nickname: "edna",
	})
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := ParseToken(access)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims["uid"])
	assert.EqualValues(t, 7, claims["tenant_id"])
	assert.Equal(t, "teacher", claims["role"])
	assert.Equal(t, "access", claims["type"])

	claims, err = ParseToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "refresh", claims["type"])
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}
