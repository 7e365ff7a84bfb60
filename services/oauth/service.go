package oauth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"

	"gcalgateway/lib/myerrors"
	"gcalgateway/lib/mylog"
	"gcalgateway/lib/mypublisher"
	"gcalgateway/lib/mytime"
	"gcalgateway/lib/myvault"
	"gcalgateway/services/oauth/oauthclient"
	"gcalgateway/services/oauth/oauthevents"
)

type service struct {
	clientID    string
	redirectURL string
	vault       myvault.VaultReadWriter[oauth2.Token]
	nower       mytime.Nower
	logger      mylog.Logger
	oauthClient oauthclient.OauthClient
	publisher   mypublisher.Publisher
}

func newService(clientID string, redirectURL string, vault myvault.VaultReadWriter[oauth2.Token], nower mytime.Nower, oauthClient oauthclient.OauthClient, pub mypublisher.Publisher) *service {
	return &service{
		clientID:    clientID,
		redirectURL: redirectURL,
		vault:       vault,
		nower:       nower,
		oauthClient: oauthClient,
		logger:      mylog.New("oauth"),
		publisher:   pub,
	}
}

func (s *service) CreateTopics(c context.Context) error {
	err := s.publisher.CreateTopic(c, oauthevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", oauthevents.TopicName, err)
	}

	return nil
}

func (s *service) start(c context.Context, currentHostname string) (string, error) {
	s.logger.Log(c, "", mylog.SeverityInfo, "Compose authorization URL for provider %s", providerName)

	authURL := s.oauthClient.ComposeAuthURL(c, oauthclient.ComposeAuthURLRequest{
		CompletionURL: s.completionURL(currentHostname),
		State:         stateToken,
	})

	err := s.publisher.Publish(c, oauthevents.TopicName, oauthevents.OAuthAuthorizationStarted{
		ProviderName: providerName,
		ClientID:     s.clientID,
	})
	if err != nil {
		s.logger.Log(c, "", mylog.SeverityWarn, "Error publishing event: %s", err)
	}

	return authURL, nil
}

func (s *service) done(c context.Context, code string, currentHostname string) error {
	s.logger.Log(c, "", mylog.SeverityInfo, "Exchange authorization code for token")

	token, err := s.oauthClient.GetAccessToken(c, oauthclient.GetTokenRequest{
		RedirectURI: s.completionURL(currentHostname),
		Code:        code,
	})
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error getting token: %s", err))
	}

	// Store new token in vault, overwriting the previous one
	err = s.vault.Put(c, myvault.CurrentCredentials, token)
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error storing token in vault: %s", err))
	}

	err = s.publisher.Publish(c, oauthevents.TopicName, oauthevents.OAuthTokenEstablished{
		ProviderName: providerName,
		ClientID:     s.clientID,
		TokenType:    token.TokenType,
		ValidUntil:   token.Expiry,
	})
	if err != nil {
		s.logger.Log(c, "", mylog.SeverityWarn, "Error publishing event: %s", err)
	}

	s.logger.Log(c, "", mylog.SeverityInfo, "Token stored for provider %s", providerName)

	return nil
}

func (s *service) getStatus(c context.Context) (OAuthStatus, error) {
	s.logger.Log(c, "", mylog.SeverityInfo, "Get oauth status")

	token, exists, err := s.vault.Get(c, myvault.CurrentCredentials)
	if err != nil {
		return OAuthStatus{}, myerrors.NewInternalError(fmt.Errorf("error fetching token: %s", err))
	}

	status := OAuthStatus{
		ProviderName: providerName,
		ClientID:     s.clientID,
		Authorized:   exists && token.AccessToken != "",
	}
	if !status.Authorized {
		return status, nil
	}

	status.TokenType = token.TokenType
	status.HasRefreshToken = token.RefreshToken != ""
	if !token.Expiry.IsZero() {
		expiry := token.Expiry
		status.ValidUntil = &expiry
		status.Expired = expiry.Before(s.nower.Now())
	}

	return status, nil
}

func (s *service) completionURL(currentHostname string) string {
	if s.redirectURL != "" {
		return s.redirectURL
	}
	return fmt.Sprintf("%s/oauth2callback", currentHostname)
}
