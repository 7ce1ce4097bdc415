package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredential_Valid(t *testing.T) {
	cred, err := NewCredential("www.example.com", 9999, "alice", "secret")

	require.NoError(t, err)
	assert.Equal(t, "www.example.com", cred.Host)
	assert.Equal(t, 9999, cred.Port)
	assert.Equal(t, "alice", cred.Username)
	assert.Equal(t, "secret", cred.Password)
}

func TestNewCredential_PortOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		port int
	}{
		{"zero", 0},
		{"negative", -1},
		{"too large", 65536},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCredential("www.example.com", tt.port, "alice", "secret")
			assert.True(t, errors.Is(err, ErrInvalidPort))
		})
	}
}

func TestCredential_StringMasksPassword(t *testing.T) {
	cred, err := NewCredential("www.example.com", 443, "alice", "hunter2")
	require.NoError(t, err)

	for _, rendered := range []string{
		cred.String(),
		fmt.Sprintf("%v", cred),
		fmt.Sprintf("%s", cred),
		fmt.Sprintf("%#v", cred),
	} {
		assert.NotContains(t, rendered, "hunter2")
		assert.Contains(t, rendered, "****")
	}
}

func TestAuthenticatedCredential_Accessors(t *testing.T) {
	cred := NewAuthenticatedCredential("www.example.com", 9999, "T")

	assert.Equal(t, "www.example.com", cred.Host())
	assert.Equal(t, 9999, cred.Port())
	assert.Equal(t, "T", cred.AccessToken())
	assert.Equal(t, "https://www.example.com:9999", cred.BaseURL())
}

func TestAuthenticatedCredential_StringMasksToken(t *testing.T) {
	cred := NewAuthenticatedCredential("www.example.com", 9999, "super-secret-token")

	for _, rendered := range []string{
		cred.String(),
		fmt.Sprintf("%v", cred),
		fmt.Sprintf("%s", cred),
		fmt.Sprintf("%+v", cred),
		fmt.Sprintf("%#v", cred),
	} {
		assert.NotContains(t, rendered, "super-secret-token")
		assert.Contains(t, rendered, "****")
	}
}

func TestAuthenticatedCredential_PurgeWithoutHook(t *testing.T) {
	cred := NewAuthenticatedCredential("www.example.com", 9999, "T")

	assert.NoError(t, cred.Purge())
}

// TestAuthenticatedCredential_PurgeInvokesHookEveryCall tests that Purge has
// no already-purged guard: N calls invoke the hook N times.
func TestAuthenticatedCredential_PurgeInvokesHookEveryCall(t *testing.T) {
	calls := 0
	cred := NewAuthenticatedCredential("www.example.com", 9999, "T").
		OnPurge(func() error {
			calls++
			return nil
		})

	for i := 0; i < 3; i++ {
		require.NoError(t, cred.Purge())
	}

	assert.Equal(t, 3, calls)
}

func TestAuthenticatedCredential_PurgePropagatesHookError(t *testing.T) {
	hookErr := errors.New("remove failed")
	cred := NewAuthenticatedCredential("www.example.com", 9999, "T").
		OnPurge(func() error { return hookErr })

	assert.ErrorIs(t, cred.Purge(), hookErr)
}
