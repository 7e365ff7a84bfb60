package events

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/oauth2"
	calendar "google.golang.org/api/calendar/v3"

	"gcalgateway/lib/mypublisher"
	"gcalgateway/lib/mytime"
	"gcalgateway/lib/myvault"
	"gcalgateway/services/events/calendarclient"
	"gcalgateway/services/events/calendarevents"
)

var exampleToken = oauth2.Token{
	AccessToken:  "abc123",
	TokenType:    "Bearer",
	RefreshToken: "rst456",
	Expiry:       mytime.ExampleTime,
}

func TestEvents(t *testing.T) {

	t.Run("Create event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, vault, calendarClient, publisher := setup(t, ctrl)

		// given
		vault.EXPECT().Get(gomock.Any(), myvault.CurrentCredentials).Return(exampleToken, true, nil)
		calendarClient.EXPECT().Insert(gomock.Any(), exampleToken, "primary", gomock.Any()).DoAndReturn(
			func(ctx context.Context, token oauth2.Token, calendarUID string, event *calendar.Event) (*calendar.Event, error) {
				assert.Equal(t, "Standup", event.Summary)
				assert.Equal(t, "2026-09-01T09:00:00+02:00", event.Start.DateTime)
				return &calendar.Event{Id: "evt-1", Summary: event.Summary, Status: "confirmed"}, nil
			})
		publisher.EXPECT().Publish(gomock.Any(), calendarevents.TopicName, calendarevents.CalendarEventCreated{
			CalendarUID: "primary",
			EventUID:    "evt-1",
			Summary:     "Standup",
		}).Return(nil)

		// when
		request, err := http.NewRequest(http.MethodPost, "/createEvent", strings.NewReader(`{
			"calendarId": "primary",
			"eventDetails": {
				"summary": "Standup",
				"start": {"dateTime": "2026-09-01T09:00:00+02:00"},
				"end": {"dateTime": "2026-09-01T09:15:00+02:00"}
			}
		}`))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.JSONEq(t, `{"id":"evt-1","summary":"Standup","status":"confirmed"}`, response.Body.String())
	})

	t.Run("Create event without credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, vault, _, _ := setup(t, ctrl)

		// given
		vault.EXPECT().Get(gomock.Any(), myvault.CurrentCredentials).Return(oauth2.Token{}, false, nil)

		// when
		request, err := http.NewRequest(http.MethodPost, "/createEvent", strings.NewReader(`{
			"calendarId": "primary",
			"eventDetails": {"summary": "Standup"}
		}`))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 401, response.Code)
		assert.Contains(t, response.Body.String(), "authorize via /initialize first")
	})

	t.Run("Create event with missing calendarId", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _ := setup(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodPost, "/createEvent", strings.NewReader(`{
			"eventDetails": {"summary": "Standup"}
		}`))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 400, response.Code)
		assert.Contains(t, response.Body.String(), "missing calendarId")
	})

	t.Run("Create event with malformed eventDetails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, vault, _, _ := setup(t, ctrl)

		// given
		vault.EXPECT().Get(gomock.Any(), myvault.CurrentCredentials).Return(exampleToken, true, nil)

		// when
		request, err := http.NewRequest(http.MethodPost, "/createEvent", strings.NewReader(`{
			"calendarId": "primary",
			"eventDetails": {"summary": 42}
		}`))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 400, response.Code)
		assert.Contains(t, response.Body.String(), "error parsing eventDetails")
	})

	t.Run("Create event with provider error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, vault, calendarClient, _ := setup(t, ctrl)

		// given
		vault.EXPECT().Get(gomock.Any(), myvault.CurrentCredentials).Return(exampleToken, true, nil)
		calendarClient.EXPECT().Insert(gomock.Any(), exampleToken, "primary", gomock.Any()).
			Return(nil, fmt.Errorf("googleapi: Error 403: Rate Limit Exceeded, rateLimitExceeded"))

		// when
		request, err := http.NewRequest(http.MethodPost, "/createEvent", strings.NewReader(`{
			"calendarId": "primary",
			"eventDetails": {"summary": "Standup"}
		}`))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 500, response.Code)
		assert.Contains(t, response.Body.String(), "Error 403: Rate Limit Exceeded")
	})

	t.Run("Create event with failing vault", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, vault, _, _ := setup(t, ctrl)

		// given
		vault.EXPECT().Get(gomock.Any(), myvault.CurrentCredentials).Return(oauth2.Token{}, false, fmt.Errorf("file unreadable"))

		// when
		request, err := http.NewRequest(http.MethodPost, "/createEvent", strings.NewReader(`{
			"calendarId": "primary",
			"eventDetails": {"summary": "Standup"}
		}`))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 500, response.Code)
		assert.Contains(t, response.Body.String(), "error fetching token from vault")
	})

	t.Run("Update event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, vault, calendarClient, publisher := setup(t, ctrl)

		// given
		vault.EXPECT().Get(gomock.Any(), myvault.CurrentCredentials).Return(exampleToken, true, nil)
		calendarClient.EXPECT().Update(gomock.Any(), exampleToken, "primary", "evt-1", gomock.Any()).DoAndReturn(
			func(ctx context.Context, token oauth2.Token, calendarUID string, eventUID string, event *calendar.Event) (*calendar.Event, error) {
				assert.Equal(t, "Standup (moved)", event.Summary)
				return &calendar.Event{Id: "evt-1", Summary: event.Summary, Status: "confirmed"}, nil
			})
		publisher.EXPECT().Publish(gomock.Any(), calendarevents.TopicName, calendarevents.CalendarEventUpdated{
			CalendarUID: "primary",
			EventUID:    "evt-1",
			Summary:     "Standup (moved)",
		}).Return(nil)

		// when
		request, err := http.NewRequest(http.MethodPut, "/updateEvent", strings.NewReader(`{
			"calendarId": "primary",
			"eventId": "evt-1",
			"eventDetails": {"summary": "Standup (moved)"}
		}`))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.JSONEq(t, `{"id":"evt-1","summary":"Standup (moved)","status":"confirmed"}`, response.Body.String())
	})

	t.Run("Update event with missing eventId", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _ := setup(t, ctrl)

		// when
		request, err := http.NewRequest(http.MethodPut, "/updateEvent", strings.NewReader(`{
			"calendarId": "primary",
			"eventDetails": {"summary": "Standup"}
		}`))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 400, response.Code)
		assert.Contains(t, response.Body.String(), "missing eventId")
	})

	t.Run("Delete event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, vault, calendarClient, publisher := setup(t, ctrl)

		// given
		vault.EXPECT().Get(gomock.Any(), myvault.CurrentCredentials).Return(exampleToken, true, nil)
		calendarClient.EXPECT().Delete(gomock.Any(), exampleToken, "primary", "evt-1").Return(nil)
		publisher.EXPECT().Publish(gomock.Any(), calendarevents.TopicName, calendarevents.CalendarEventDeleted{
			CalendarUID: "primary",
			EventUID:    "evt-1",
		}).Return(nil)

		// when
		request, err := http.NewRequest(http.MethodDelete, "/deleteEvent", strings.NewReader(`{
			"calendarId": "primary",
			"eventId": "evt-1"
		}`))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.JSONEq(t, `{"message": "Event deleted successfully."}`, response.Body.String())
	})

	t.Run("Delete event without credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, vault, _, _ := setup(t, ctrl)

		// given
		vault.EXPECT().Get(gomock.Any(), myvault.CurrentCredentials).Return(oauth2.Token{}, false, nil)

		// when
		request, err := http.NewRequest(http.MethodDelete, "/deleteEvent", strings.NewReader(`{
			"calendarId": "primary",
			"eventId": "evt-1"
		}`))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 401, response.Code)
	})

	t.Run("Delete event with provider error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, vault, calendarClient, _ := setup(t, ctrl)

		// given
		vault.EXPECT().Get(gomock.Any(), myvault.CurrentCredentials).Return(exampleToken, true, nil)
		calendarClient.EXPECT().Delete(gomock.Any(), exampleToken, "primary", "no-such-event").
			Return(fmt.Errorf("googleapi: Error 404: Not Found, notFound"))

		// when
		request, err := http.NewRequest(http.MethodDelete, "/deleteEvent", strings.NewReader(`{
			"calendarId": "primary",
			"eventId": "no-such-event"
		}`))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 500, response.Code)
		assert.Contains(t, response.Body.String(), "Error 404")
	})
}

func setup(t *testing.T, ctrl *gomock.Controller) (context.Context, *mux.Router, *myvault.MockVaultReader[oauth2.Token], *calendarclient.MockCalendarClient, *mypublisher.MockPublisher) {
	ctx := context.TODO()
	router := mux.NewRouter()
	vault := myvault.NewMockVaultReader[oauth2.Token](ctrl)
	calendarClient := calendarclient.NewMockCalendarClient(ctrl)
	publisher := mypublisher.NewMockPublisher(ctrl)
	sut := NewService(vault, calendarClient, publisher)

	publisher.EXPECT().CreateTopic(gomock.Any(), calendarevents.TopicName).Return(nil)

	err := sut.RegisterEndpoints(ctx, router)
	assert.NoError(t, err)

	return ctx, router, vault, calendarClient, publisher
}
