package mypublisher

import (
	"context"
	"fmt"
	"time"

	"gcalgateway/lib/mytime"
	"gcalgateway/lib/myuuid"
)

// Driver identifiers supported by the publisher factory.
const (
	DriverNone   = "none"
	DriverPubsub = "pubsub"
	DriverKafka  = "kafka"
)

type Config struct {
	Driver  string
	Brokers []string // kafka bootstrap brokers
}

type EventEnvelope struct {
	UID           string
	CreatedAt     time.Time
	Topic         string
	AggregateUID  string
	EventTypeName string
	EventPayload  string
}

func (e EventEnvelope) String() string {
	return e.Topic + "." + e.EventTypeName + "." + e.AggregateUID
}

type Event interface {
	GetEventTypeName() string
	GetAggregateName() string
}

//go:generate mockgen -source=api.go -package mypublisher -destination publisher_mock.go Publisher
type Publisher interface {
	CreateTopic(c context.Context, topic string) error
	Publish(c context.Context, topic string, event Event) error
}

func New(c context.Context, cfg Config, nower mytime.Nower, uuider myuuid.UUIDer) (Publisher, func(), error) {
	switch cfg.Driver {
	case "", DriverNone:
		return newNopPublisher(c)
	case DriverPubsub:
		return newGcloudPublisher(c, nower, uuider)
	case DriverKafka:
		return newKafkaPublisher(c, cfg, nower, uuider)
	default:
		return nil, nil, fmt.Errorf("unsupported publisher driver: %s", cfg.Driver)
	}
}
