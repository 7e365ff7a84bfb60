package oauth

import (
	"net/http"
	"net/url"
	"time"

	formcodec "github.com/go-playground/form/v4"

	"gcalgateway/lib/myerrors"
)

const (
	providerName = "google"

	// Echoed back by the provider on the oauth2callback redirect.
	stateToken = "state-token"
)

type OAuthStatus struct {
	ProviderName    string     `json:"providerName"`
	ClientID        string     `json:"clientID"`
	Authorized      bool       `json:"authorized"`
	TokenType       string     `json:"tokenType,omitempty"`
	HasRefreshToken bool       `json:"hasRefreshToken,omitempty"`
	ValidUntil      *time.Time `json:"validUntil,omitempty"`
	Expired         bool       `json:"expired,omitempty"`
}

type CallbackPage struct {
	Code             string `form:"code"`
	State            string `form:"state"`
	Error            string `form:"error"`
	ErrorDescription string `form:"error_description"`
}

func NewCallbackPageFromRequest(r *http.Request) (CallbackPage, error) {
	err := r.ParseForm()
	if err != nil {
		return CallbackPage{}, myerrors.NewInvalidInputError(err)
	}
	return newCallbackPageFromValues(r.Form)
}

func newCallbackPageFromValues(values url.Values) (CallbackPage, error) {
	page := CallbackPage{}
	err := formcodec.NewDecoder().Decode(&page, values)
	if err != nil {
		return page, myerrors.NewInvalidInputError(err)
	}
	return page, nil
}
