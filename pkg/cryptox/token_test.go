package cryptox

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"128-bit token", TokenSize128},
		{"256-bit token", TokenSize256},
		{"custom size", 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateToken(tt.size)
			require.NoError(t, err)

			raw, err := base64.RawURLEncoding.DecodeString(token)
			require.NoError(t, err)
			require.Len(t, raw, tt.size)

			token2, err := GenerateToken(tt.size)
			require.NoError(t, err)
			require.NotEqual(t, token, token2, "tokens should be unique")
		})
	}
}

func TestGenerateToken_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		token, err := GenerateToken(size)
		require.Error(t, err)
		require.Empty(t, token)
	}
}

func TestMustGenerateToken_Panics(t *testing.T) {
	require.NotEmpty(t, MustGenerateToken(TokenSize256))
	require.Panics(t, func() { MustGenerateToken(0) })
}

func TestEqualTokens(t *testing.T) {
	require.True(t, EqualTokens("abc", "abc"))
	require.False(t, EqualTokens("abc", "abd"))
	require.False(t, EqualTokens("abc", "abcd"))
	require.False(t, EqualTokens("", ""))
}
