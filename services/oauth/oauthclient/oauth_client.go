package oauthclient

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type Config struct {
	ClientID     string
	ClientSecret string
	Scopes       []string
}

type ComposeAuthURLRequest struct {
	CompletionURL string
	State         string
}

type GetTokenRequest struct {
	RedirectURI string
	Code        string
}

//go:generate mockgen -source=oauth_client.go -package oauthclient -destination oauth_client_mock.go OauthClient
type OauthClient interface {
	ComposeAuthURL(c context.Context, req ComposeAuthURLRequest) string
	GetAccessToken(c context.Context, req GetTokenRequest) (oauth2.Token, error)
}

type oauthClient struct {
	config   Config
	endpoint oauth2.Endpoint
}

func NewOAuthClient(config Config) *oauthClient {
	return &oauthClient{
		config:   config,
		endpoint: google.Endpoint,
	}
}

// NewOAuthClientWithEndpoint targets a non-default authorization server, typically a fake one in tests.
func NewOAuthClientWithEndpoint(config Config, endpoint oauth2.Endpoint) *oauthClient {
	return &oauthClient{
		config:   config,
		endpoint: endpoint,
	}
}

func (oc oauthClient) ComposeAuthURL(c context.Context, req ComposeAuthURLRequest) string {
	conf := oc.oauth2Config(req.CompletionURL)

	// access_type=offline makes Google include a refresh-token on first consent
	return conf.AuthCodeURL(req.State, oauth2.AccessTypeOffline)
}

func (oc oauthClient) GetAccessToken(c context.Context, req GetTokenRequest) (oauth2.Token, error) {
	conf := oc.oauth2Config(req.RedirectURI)

	token, err := conf.Exchange(c, req.Code)
	if err != nil {
		return oauth2.Token{}, fmt.Errorf("error exchanging authorization code for token: %s", err)
	}

	return *token, nil
}

func (oc oauthClient) oauth2Config(redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     oc.config.ClientID,
		ClientSecret: oc.config.ClientSecret,
		Endpoint:     oc.endpoint,
		RedirectURL:  redirectURL,
		Scopes:       oc.config.Scopes,
	}
}
