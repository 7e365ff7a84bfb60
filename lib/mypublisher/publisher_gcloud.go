package mypublisher

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"cloud.google.com/go/pubsub"

	"gcalgateway/lib/mytime"
	"gcalgateway/lib/myuuid"
)

type gcloudPublisher struct {
	client    *pubsub.Client
	topics    map[string]*pubsub.Topic
	enveloper enveloper
}

func newGcloudPublisher(c context.Context, nower mytime.Nower, uuider myuuid.UUIDer) (*gcloudPublisher, func(), error) {
	client, err := pubsub.NewClient(c, os.Getenv("GOOGLE_CLOUD_PROJECT"))
	if err != nil {
		return nil, nil, fmt.Errorf("error creating pubsub-client: %s", err)
	}

	return &gcloudPublisher{
			client:    client,
			topics:    map[string]*pubsub.Topic{},
			enveloper: newEnveloper(nower, uuider),
		}, func() {
			client.Close()
		}, nil
}

func (p *gcloudPublisher) CreateTopic(c context.Context, topicName string) error {
	topic := p.client.Topic(topicName)
	exists, err := topic.Exists(c)
	if err != nil {
		return fmt.Errorf("error checking if topic %s exists: %s", topicName, err)
	}

	if !exists {
		topic, err = p.client.CreateTopic(c, topicName)
		if err != nil {
			return fmt.Errorf("error creating topic %s: %s", topicName, err)
		}
	}

	p.topics[topicName] = topic

	return nil
}

func (p *gcloudPublisher) Publish(c context.Context, topicName string, event Event) error {
	envelope, err := p.enveloper.do(topicName, event)
	if err != nil {
		return fmt.Errorf("error creating envelope: %s", err)
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("error marshalling envelope: %s", err)
	}

	topic, found := p.topics[topicName]
	if !found {
		topic = p.client.Topic(topicName)
		p.topics[topicName] = topic
	}

	_, err = topic.Publish(c, &pubsub.Message{Data: data}).Get(c)
	if err != nil {
		return fmt.Errorf("error publishing event %s: %s", envelope, err)
	}

	return nil
}
