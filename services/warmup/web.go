package warmup

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/oauth2"

	"gcalgateway/lib/mycontext"
	"gcalgateway/lib/myhttp"
	"gcalgateway/lib/mylog"
	"gcalgateway/lib/myvault"
)

type webService struct {
	logger mylog.Logger
	vault  myvault.VaultReader[oauth2.Token]
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewService(vault myvault.VaultReader[oauth2.Token]) *webService {
	logger := mylog.New("warmup")
	return &webService{
		logger: logger,
		vault:  vault,
	}
}

func (s webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/_ah/warmup", s.warmupPage()).Methods("GET")
}

// warmupPage touches the vault so that the store connection is established
// before the first real request comes in.
func (s *webService) warmupPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		_, _, err := s.vault.Get(c, myvault.CurrentCredentials)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: "Successfully processed warmup request",
		})
	}
}
