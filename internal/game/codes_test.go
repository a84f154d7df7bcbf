package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ab12cd", "AB12CD"},
		{"AB12CD", "AB12CD"},
		{"  ab12cd  ", "AB12CD"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeCode(tt.in))
	}
}

func TestNewRoomCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := newRoomCode()
		require.NoError(t, err)
		assert.Len(t, code, codeLength)
		assert.Equal(t, NormalizeCode(code), code)
		for _, c := range code {
			assert.True(t, strings.ContainsRune(codeAlphabet, c), "unexpected character %q", c)
		}
		seen[code] = true
	}
	// 100 draws from a 32^6 space colliding would point at a broken
	// generator.
	assert.Greater(t, len(seen), 95)
}
