package calendarclient

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

type Config struct {
	ClientID     string
	ClientSecret string
}

//go:generate mockgen -source=calendar_client.go -package calendarclient -destination calendar_client_mock.go CalendarClient
type CalendarClient interface {
	Insert(c context.Context, token oauth2.Token, calendarUID string, event *calendar.Event) (*calendar.Event, error)
	Update(c context.Context, token oauth2.Token, calendarUID string, eventUID string, event *calendar.Event) (*calendar.Event, error)
	Delete(c context.Context, token oauth2.Token, calendarUID string, eventUID string) error
}

type googleClient struct {
	config   Config
	endpoint oauth2.Endpoint
	basePath string
}

func NewGoogleClient(config Config) *googleClient {
	return &googleClient{
		config:   config,
		endpoint: google.Endpoint,
	}
}

// NewGoogleClientWithBasePath targets a non-default calendar API, typically a fake one in tests.
func NewGoogleClientWithBasePath(config Config, endpoint oauth2.Endpoint, basePath string) *googleClient {
	return &googleClient{
		config:   config,
		endpoint: endpoint,
		basePath: basePath,
	}
}

func (gc googleClient) Insert(c context.Context, token oauth2.Token, calendarUID string, event *calendar.Event) (*calendar.Event, error) {
	service, err := gc.calendarService(c, token)
	if err != nil {
		return nil, err
	}

	return service.Events.Insert(calendarUID, event).Context(c).Do()
}

func (gc googleClient) Update(c context.Context, token oauth2.Token, calendarUID string, eventUID string, event *calendar.Event) (*calendar.Event, error) {
	service, err := gc.calendarService(c, token)
	if err != nil {
		return nil, err
	}

	return service.Events.Update(calendarUID, eventUID, event).Context(c).Do()
}

func (gc googleClient) Delete(c context.Context, token oauth2.Token, calendarUID string, eventUID string) error {
	service, err := gc.calendarService(c, token)
	if err != nil {
		return err
	}

	return service.Events.Delete(calendarUID, eventUID).Context(c).Do()
}

// calendarService binds a fresh calendar client to the supplied token. The
// underlying http client transparently refreshes the access-token when it
// has expired and a refresh-token is available.
func (gc googleClient) calendarService(c context.Context, token oauth2.Token) (*calendar.Service, error) {
	conf := &oauth2.Config{
		ClientID:     gc.config.ClientID,
		ClientSecret: gc.config.ClientSecret,
		Endpoint:     gc.endpoint,
	}

	opts := []option.ClientOption{option.WithHTTPClient(conf.Client(c, &token))}
	if gc.basePath != "" {
		opts = append(opts, option.WithEndpoint(gc.basePath))
	}

	service, err := calendar.NewService(c, opts...)
	if err != nil {
		return nil, fmt.Errorf("error creating calendar client: %s", err)
	}

	return service, nil
}
