package oauthclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/oauth2"
)

func TestComposeAuthURL(t *testing.T) {
	client := NewOAuthClient(Config{
		ClientID:     "my-client-id",
		ClientSecret: "my-client-secret",
		Scopes:       []string{"https://www.googleapis.com/auth/calendar"},
	})

	authURL := client.ComposeAuthURL(context.TODO(), ComposeAuthURLRequest{
		CompletionURL: "http://localhost:8080/oauth2callback",
		State:         "state-token",
	})

	u, err := url.Parse(authURL)
	assert.NoError(t, err)
	assert.Equal(t, "accounts.google.com", u.Host)
	assert.Equal(t, "/o/oauth2/auth", u.Path)
	assert.Equal(t, "my-client-id", u.Query().Get("client_id"))
	assert.Equal(t, "http://localhost:8080/oauth2callback", u.Query().Get("redirect_uri"))
	assert.Equal(t, "https://www.googleapis.com/auth/calendar", u.Query().Get("scope"))
	assert.Equal(t, "state-token", u.Query().Get("state"))
	assert.Equal(t, "offline", u.Query().Get("access_type"))
	assert.Equal(t, "code", u.Query().Get("response_type"))

	// composing again yields the exact same URL
	assert.Equal(t, authURL, client.ComposeAuthURL(context.TODO(), ComposeAuthURLRequest{
		CompletionURL: "http://localhost:8080/oauth2callback",
		State:         "state-token",
	}))
}

func TestGetAccessToken(t *testing.T) {
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := r.ParseForm()
		assert.NoError(t, err)
		assert.Equal(t, "authorization-code-123", r.Form.Get("code"))
		assert.Equal(t, "http://localhost:8080/oauth2callback", r.Form.Get("redirect_uri"))

		w.Header().Set("Content-Type", "application/json")
		_, err = w.Write([]byte(`{"access_token":"ya29.abc123","token_type":"Bearer","refresh_token":"1//xyz789","expires_in":3599}`))
		assert.NoError(t, err)
	}))
	defer tokenServer.Close()

	client := NewOAuthClientWithEndpoint(Config{
		ClientID:     "my-client-id",
		ClientSecret: "my-client-secret",
	}, oauth2.Endpoint{
		AuthURL:  tokenServer.URL + "/auth",
		TokenURL: tokenServer.URL + "/token",
	})

	token, err := client.GetAccessToken(context.TODO(), GetTokenRequest{
		RedirectURI: "http://localhost:8080/oauth2callback",
		Code:        "authorization-code-123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "ya29.abc123", token.AccessToken)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, "1//xyz789", token.RefreshToken)
	assert.True(t, token.Expiry.After(time.Now()))
}

func TestGetAccessTokenError(t *testing.T) {
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"Malformed auth code."}`))
	}))
	defer tokenServer.Close()

	client := NewOAuthClientWithEndpoint(Config{
		ClientID:     "my-client-id",
		ClientSecret: "my-client-secret",
	}, oauth2.Endpoint{
		AuthURL:  tokenServer.URL + "/auth",
		TokenURL: tokenServer.URL + "/token",
	})

	_, err := client.GetAccessToken(context.TODO(), GetTokenRequest{
		RedirectURI: "http://localhost:8080/oauth2callback",
		Code:        "expired-code",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid_grant")
}
