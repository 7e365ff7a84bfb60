package events

import (
	"encoding/json"
)

type CreateEventRequest struct {
	CalendarUID  string          `json:"calendarId"`
	EventDetails json.RawMessage `json:"eventDetails"`
}

type UpdateEventRequest struct {
	CalendarUID  string          `json:"calendarId"`
	EventUID     string          `json:"eventId"`
	EventDetails json.RawMessage `json:"eventDetails"`
}

type DeleteEventRequest struct {
	CalendarUID string `json:"calendarId"`
	EventUID    string `json:"eventId"`
}
