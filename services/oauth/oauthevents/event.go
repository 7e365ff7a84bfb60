package oauthevents

import (
	"time"
)

const (
	TopicName                     = "oauth"
	oauthAuthorizationStartedName = TopicName + ".authorization.started"
	oauthTokenEstablishedName     = TopicName + ".token.established"
)

type OAuthAuthorizationStarted struct {
	ProviderName string
	ClientID     string
}

func (e OAuthAuthorizationStarted) GetEventTypeName() string {
	return oauthAuthorizationStartedName
}

func (e OAuthAuthorizationStarted) GetAggregateName() string {
	return e.ClientID
}

type OAuthTokenEstablished struct {
	ProviderName string
	ClientID     string
	TokenType    string
	ValidUntil   time.Time
}

func (e OAuthTokenEstablished) GetEventTypeName() string {
	return oauthTokenEstablishedName
}

func (e OAuthTokenEstablished) GetAggregateName() string {
	return e.ClientID
}
