package oauth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/oauth2"

	"gcalgateway/lib/mycontext"
	"gcalgateway/lib/myerrors"
	"gcalgateway/lib/myhttp"
	"gcalgateway/lib/mylog"
	"gcalgateway/lib/mypublisher"
	"gcalgateway/lib/mytime"
	"gcalgateway/lib/myvault"
	"gcalgateway/services/oauth/oauthclient"
)

type webService struct {
	service *service
	logger  mylog.Logger
}

func NewService(clientID string, redirectURL string, vault myvault.VaultReadWriter[oauth2.Token], nower mytime.Nower, oauthClient oauthclient.OauthClient, pub mypublisher.Publisher) *webService {
	return &webService{
		service: newService(clientID, redirectURL, vault, nower, oauthClient, pub),
		logger:  mylog.New("oauth"),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/initialize", s.initializePage()).Methods("GET")
	router.HandleFunc("/oauth2callback", s.callbackPage()).Methods("GET")
	router.HandleFunc("/status", s.statusPage()).Methods("GET")

	err := s.service.CreateTopics(c)
	if err != nil {
		return err
	}

	return nil
}

func (s *webService) initializePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		authURL, err := s.service.start(c, myhttp.HostnameWithScheme(r))
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, authURL)
	}
}

func (s *webService) callbackPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		page, err := NewCallbackPageFromRequest(r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		if page.Error != "" {
			errorWriter.WriteError(c, w, 2, myerrors.NewInvalidInputError(fmt.Errorf("%s (%s)", page.Error, page.ErrorDescription)))
			return
		}

		if page.Code == "" {
			errorWriter.WriteError(c, w, 3, myerrors.NewInvalidInputError(fmt.Errorf("missing code")))
			return
		}

		err = s.service.done(c, page.Code, myhttp.HostnameWithScheme(r))
		if err != nil {
			errorWriter.WriteError(c, w, 4, err)
			return
		}

		errorWriter.WriteText(c, w, http.StatusOK, "Authentication successful! You can close this tab.")
	}
}

func (s *webService) statusPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		status, err := s.service.getStatus(c)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, status)
	}
}
