package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/oauth2"

	"gcalgateway/lib/mycontext"
	"gcalgateway/lib/myerrors"
	"gcalgateway/lib/myhttp"
	"gcalgateway/lib/mylog"
	"gcalgateway/lib/mypublisher"
	"gcalgateway/lib/myvault"
	"gcalgateway/services/events/calendarclient"
)

type webService struct {
	service *service
	logger  mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(vault myvault.VaultReader[oauth2.Token], calendarClient calendarclient.CalendarClient, pub mypublisher.Publisher) *webService {
	return &webService{
		service: newService(vault, calendarClient, pub),
		logger:  mylog.New("events"),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/createEvent", s.createEventPage()).Methods("POST")
	router.HandleFunc("/updateEvent", s.updateEventPage()).Methods("PUT")
	router.HandleFunc("/deleteEvent", s.deleteEventPage()).Methods("DELETE")

	err := s.service.CreateTopics(c)
	if err != nil {
		return err
	}

	return nil
}

func (s *webService) createEventPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		req := CreateEventRequest{}
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("error parsing request: %s", err)))
			return
		}

		if req.CalendarUID == "" {
			errorWriter.WriteError(c, w, 2, myerrors.NewInvalidInputError(fmt.Errorf("missing calendarId")))
			return
		}
		if len(req.EventDetails) == 0 {
			errorWriter.WriteError(c, w, 3, myerrors.NewInvalidInputError(fmt.Errorf("missing eventDetails")))
			return
		}

		event, err := s.service.createEvent(c, req)
		if err != nil {
			errorWriter.WriteError(c, w, 4, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, event)
	}
}

func (s *webService) updateEventPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		req := UpdateEventRequest{}
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("error parsing request: %s", err)))
			return
		}

		if req.CalendarUID == "" {
			errorWriter.WriteError(c, w, 2, myerrors.NewInvalidInputError(fmt.Errorf("missing calendarId")))
			return
		}
		if req.EventUID == "" {
			errorWriter.WriteError(c, w, 3, myerrors.NewInvalidInputError(fmt.Errorf("missing eventId")))
			return
		}
		if len(req.EventDetails) == 0 {
			errorWriter.WriteError(c, w, 4, myerrors.NewInvalidInputError(fmt.Errorf("missing eventDetails")))
			return
		}

		event, err := s.service.updateEvent(c, req)
		if err != nil {
			errorWriter.WriteError(c, w, 5, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, event)
	}
}

func (s *webService) deleteEventPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		req := DeleteEventRequest{}
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("error parsing request: %s", err)))
			return
		}

		if req.CalendarUID == "" {
			errorWriter.WriteError(c, w, 2, myerrors.NewInvalidInputError(fmt.Errorf("missing calendarId")))
			return
		}
		if req.EventUID == "" {
			errorWriter.WriteError(c, w, 3, myerrors.NewInvalidInputError(fmt.Errorf("missing eventId")))
			return
		}

		err = s.service.deleteEvent(c, req)
		if err != nil {
			errorWriter.WriteError(c, w, 4, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: "Event deleted successfully.",
		})
	}
}
