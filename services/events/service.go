package events

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/oauth2"
	calendar "google.golang.org/api/calendar/v3"

	"gcalgateway/lib/myerrors"
	"gcalgateway/lib/mylog"
	"gcalgateway/lib/mypublisher"
	"gcalgateway/lib/myvault"
	"gcalgateway/services/events/calendarclient"
	"gcalgateway/services/events/calendarevents"
)

type service struct {
	vault          myvault.VaultReader[oauth2.Token]
	logger         mylog.Logger
	calendarClient calendarclient.CalendarClient
	publisher      mypublisher.Publisher
}

func newService(vault myvault.VaultReader[oauth2.Token], calendarClient calendarclient.CalendarClient, pub mypublisher.Publisher) *service {
	return &service{
		vault:          vault,
		calendarClient: calendarClient,
		logger:         mylog.New("events"),
		publisher:      pub,
	}
}

func (s *service) CreateTopics(c context.Context) error {
	err := s.publisher.CreateTopic(c, calendarevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", calendarevents.TopicName, err)
	}

	return nil
}

func (s *service) createEvent(c context.Context, req CreateEventRequest) (*calendar.Event, error) {
	token, err := s.loadToken(c)
	if err != nil {
		return nil, err
	}

	event, err := parseEventDetails(req.EventDetails)
	if err != nil {
		return nil, err
	}

	created, err := s.calendarClient.Insert(c, token, req.CalendarUID, event)
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error creating event: %s", err))
	}

	s.logger.Log(c, created.Id, mylog.SeverityInfo, "Created event %s in calendar %s", created.Id, req.CalendarUID)

	s.publish(c, calendarevents.CalendarEventCreated{
		CalendarUID: req.CalendarUID,
		EventUID:    created.Id,
		Summary:     created.Summary,
	})

	return created, nil
}

func (s *service) updateEvent(c context.Context, req UpdateEventRequest) (*calendar.Event, error) {
	token, err := s.loadToken(c)
	if err != nil {
		return nil, err
	}

	event, err := parseEventDetails(req.EventDetails)
	if err != nil {
		return nil, err
	}

	updated, err := s.calendarClient.Update(c, token, req.CalendarUID, req.EventUID, event)
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error updating event: %s", err))
	}

	s.logger.Log(c, req.EventUID, mylog.SeverityInfo, "Updated event %s in calendar %s", req.EventUID, req.CalendarUID)

	s.publish(c, calendarevents.CalendarEventUpdated{
		CalendarUID: req.CalendarUID,
		EventUID:    req.EventUID,
		Summary:     updated.Summary,
	})

	return updated, nil
}

func (s *service) deleteEvent(c context.Context, req DeleteEventRequest) error {
	token, err := s.loadToken(c)
	if err != nil {
		return err
	}

	err = s.calendarClient.Delete(c, token, req.CalendarUID, req.EventUID)
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error deleting event: %s", err))
	}

	s.logger.Log(c, req.EventUID, mylog.SeverityInfo, "Deleted event %s from calendar %s", req.EventUID, req.CalendarUID)

	s.publish(c, calendarevents.CalendarEventDeleted{
		CalendarUID: req.CalendarUID,
		EventUID:    req.EventUID,
	})

	return nil
}

// loadToken is called before every provider operation so that a token
// stored by another process instance is picked up without a restart.
func (s *service) loadToken(c context.Context) (oauth2.Token, error) {
	token, exists, err := s.vault.Get(c, myvault.CurrentCredentials)
	if err != nil {
		return oauth2.Token{}, myerrors.NewInternalError(fmt.Errorf("error fetching token from vault: %s", err))
	}
	if !exists || token.AccessToken == "" {
		return oauth2.Token{}, myerrors.NewUnauthenticatedError(fmt.Errorf("no credentials stored: authorize via /initialize first"))
	}

	return token, nil
}

func parseEventDetails(details json.RawMessage) (*calendar.Event, error) {
	event := calendar.Event{}
	err := json.Unmarshal(details, &event)
	if err != nil {
		return nil, myerrors.NewInvalidInputError(fmt.Errorf("error parsing eventDetails: %s", err))
	}

	return &event, nil
}

func (s *service) publish(c context.Context, event mypublisher.Event) {
	err := s.publisher.Publish(c, calendarevents.TopicName, event)
	if err != nil {
		s.logger.Log(c, "", mylog.SeverityWarn, "Error publishing event: %s", err)
	}
}
