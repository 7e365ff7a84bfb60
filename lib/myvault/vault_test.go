package myvault

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/oauth2"

	"gcalgateway/lib/mystore"
)

func TestVault(t *testing.T) {
	c := context.TODO()
	path := filepath.Join(t.TempDir(), "token.json")

	vault, cleanup, err := New[oauth2.Token](c, mystore.Config{
		Driver: mystore.DriverFile,
		Path:   path,
	})
	assert.NoError(t, err)
	defer cleanup()

	expiry, err := time.Parse(time.RFC3339, "2024-06-15T10:11:12Z")
	assert.NoError(t, err)

	token := oauth2.Token{
		AccessToken:  "abc123",
		TokenType:    "Bearer",
		RefreshToken: "rst456",
		Expiry:       expiry,
	}

	t.Run("Get before put", func(t *testing.T) {
		_, exists, err := vault.Get(c, CurrentCredentials)
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Put", func(t *testing.T) {
		err := vault.Put(c, CurrentCredentials, token)
		assert.NoError(t, err)
	})

	t.Run("File holds the canonical token serialization", func(t *testing.T) {
		data, err := os.ReadFile(path)
		assert.NoError(t, err)
		assert.JSONEq(t, `{
			"access_token": "abc123",
			"token_type": "Bearer",
			"refresh_token": "rst456",
			"expiry": "2024-06-15T10:11:12Z"
		}`, string(data))
	})

	t.Run("Get returns what was put", func(t *testing.T) {
		got, exists, err := vault.Get(c, CurrentCredentials)
		assert.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, token.AccessToken, got.AccessToken)
		assert.Equal(t, token.TokenType, got.TokenType)
		assert.Equal(t, token.RefreshToken, got.RefreshToken)
		assert.True(t, token.Expiry.Equal(got.Expiry))
	})

	t.Run("Put overwrites previous credentials wholesale", func(t *testing.T) {
		err := vault.Put(c, CurrentCredentials, oauth2.Token{
			AccessToken: "def789",
			TokenType:   "Bearer",
			Expiry:      expiry,
		})
		assert.NoError(t, err)

		data, err := os.ReadFile(path)
		assert.NoError(t, err)
		assert.JSONEq(t, `{
			"access_token": "def789",
			"token_type": "Bearer",
			"expiry": "2024-06-15T10:11:12Z"
		}`, string(data))
	})
}
