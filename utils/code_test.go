package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInviteCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code, err := GenerateInviteCode(20)
		require.NoError(t, err)
		require.Len(t, code, 20)

		for _, char := range code {
			assert.True(t, strings.ContainsRune(inviteCodeChars, char))
		}
		// no visually ambiguous characters
		assert.NotContains(t, code, "0")
		assert.NotContains(t, code, "O")
		assert.NotContains(t, code, "1")
		assert.NotContains(t, code, "I")
		assert.NotContains(t, code, "L")

		assert.False(t, seen[code], "generated codes must not repeat")
		seen[code] = true
	}
}
