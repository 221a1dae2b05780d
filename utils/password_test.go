package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia123", hash)

	ok, err := CheckPasswordHash("rahasia123", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CheckPasswordHash("salah", hash)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = CheckPasswordHash("rahasia123", "not-a-hash")
	assert.Error(t, err)
}

func TestIsValidEmail(t *testing.T) {
	testCases := []struct {
		email string
		want  bool
	}{
		{"pelatih@dojang.id", true},
		{" admin@kejurda.org ", true},
		{"missing-at.example", false},
		{"no@tld", false},
		{"", false},
	}

	for _, tc := range testCases {
		t.Run(tc.email, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidEmail(tc.email))
		})
	}
}

func TestPtr(t *testing.T) {
	p := Ptr(7)
	require.NotNil(t, p)
	assert.Equal(t, 7, *p)
}
