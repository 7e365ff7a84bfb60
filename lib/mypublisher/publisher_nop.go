package mypublisher

import "context"

// nopPublisher drops all events. Used when no broker is configured.
type nopPublisher struct{}

func newNopPublisher(c context.Context) (*nopPublisher, func(), error) {
	return &nopPublisher{}, func() {}, nil
}

func (p *nopPublisher) CreateTopic(c context.Context, topic string) error {
	return nil
}

func (p *nopPublisher) Publish(c context.Context, topic string, event Event) error {
	return nil
}
