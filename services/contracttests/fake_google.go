package contracttests

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	calendar "google.golang.org/api/calendar/v3"

	"gcalgateway/lib/mystore"
	"gcalgateway/lib/myuuid"
)

// FakeGoogle mimics the small part of the Google oauth2 and calendar APIs
// that the gateway talks to.
type FakeGoogle struct {
	uuider myuuid.RealUUIDer
	Events mystore.Store[calendar.Event]

	mutex        sync.Mutex
	tokensIssued int
	LastCode     string
}

func NewFakeGoogle() *FakeGoogle {
	store, _, _ := mystore.New[calendar.Event](context.Background(), mystore.Config{Driver: mystore.DriverInMemory})
	return &FakeGoogle{
		Events: store,
	}
}

func (f *FakeGoogle) RegisterEndpoints(router *mux.Router) {
	router.HandleFunc("/token", f.token()).Methods("POST")
	router.HandleFunc("/calendars/{calendarId}/events", f.insertEvent()).Methods("POST")
	router.HandleFunc("/calendars/{calendarId}/events/{eventId}", f.updateEvent()).Methods("PUT")
	router.HandleFunc("/calendars/{calendarId}/events/{eventId}", f.deleteEvent()).Methods("DELETE")
}

// TokensIssued returns the number of authorization codes exchanged so far.
func (f *FakeGoogle) TokensIssued() int {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	return f.tokensIssued
}

func (f *FakeGoogle) token() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := r.ParseForm()
		if err != nil {
			writeAPIError(w, http.StatusBadRequest, "Parse Error")
			return
		}

		f.mutex.Lock()
		f.tokensIssued++
		f.LastCode = r.Form.Get("code")
		accessToken := fmt.Sprintf("fake-access-token-%d", f.tokensIssued)
		f.mutex.Unlock()

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":"%s","token_type":"Bearer","refresh_token":"fake-refresh-token","expires_in":3600}`, accessToken)
	}
}

func (f *FakeGoogle) insertEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		calendarUID := mux.Vars(r)["calendarId"]

		event := calendar.Event{}
		err := json.NewDecoder(r.Body).Decode(&event)
		if err != nil {
			writeAPIError(w, http.StatusBadRequest, "Parse Error")
			return
		}

		event.Id = f.uuider.Create()
		event.Status = "confirmed"

		err = f.Events.Put(r.Context(), eventKey(calendarUID, event.Id), event)
		if err != nil {
			writeAPIError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeEvent(w, event)
	}
}

func (f *FakeGoogle) updateEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		calendarUID := mux.Vars(r)["calendarId"]
		eventUID := mux.Vars(r)["eventId"]

		existing, exists, err := f.Events.Get(r.Context(), eventKey(calendarUID, eventUID))
		if err != nil {
			writeAPIError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if !exists {
			writeAPIError(w, http.StatusNotFound, "Not Found")
			return
		}

		event := calendar.Event{}
		err = json.NewDecoder(r.Body).Decode(&event)
		if err != nil {
			writeAPIError(w, http.StatusBadRequest, "Parse Error")
			return
		}

		event.Id = eventUID
		event.Status = existing.Status

		err = f.Events.Put(r.Context(), eventKey(calendarUID, eventUID), event)
		if err != nil {
			writeAPIError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeEvent(w, event)
	}
}

func (f *FakeGoogle) deleteEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		calendarUID := mux.Vars(r)["calendarId"]
		eventUID := mux.Vars(r)["eventId"]

		_, exists, err := f.Events.Get(r.Context(), eventKey(calendarUID, eventUID))
		if err != nil {
			writeAPIError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if !exists {
			writeAPIError(w, http.StatusNotFound, "Not Found")
			return
		}

		err = f.Events.Remove(r.Context(), eventKey(calendarUID, eventUID))
		if err != nil {
			writeAPIError(w, http.StatusInternalServerError, err.Error())
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func eventKey(calendarUID string, eventUID string) string {
	return calendarUID + "/" + eventUID
}

func writeEvent(w http.ResponseWriter, event calendar.Event) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(event)
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeAPIError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"error":{"code":%d,"message":"%s"}}`, status, message)
}
