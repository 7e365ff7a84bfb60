package mypublisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	skafka "github.com/segmentio/kafka-go"

	"gcalgateway/lib/mytime"
	"gcalgateway/lib/myuuid"
)

const defaultPublishTimeout = 5 * time.Second

type kafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	writer         kafkaWriter
	enveloper      enveloper
	publishTimeout time.Duration
}

func newKafkaPublisher(c context.Context, cfg Config, nower mytime.Nower, uuider myuuid.UUIDer) (*kafkaPublisher, func(), error) {
	if len(cfg.Brokers) == 0 {
		return nil, nil, fmt.Errorf("kafka publisher requires brokers")
	}

	writer := &skafka.Writer{
		Addr:     skafka.TCP(cfg.Brokers...),
		Balancer: &skafka.Hash{},
	}

	return newKafkaPublisherWithWriter(writer, nower, uuider), func() {
		writer.Close()
	}, nil
}

func newKafkaPublisherWithWriter(w kafkaWriter, nower mytime.Nower, uuider myuuid.UUIDer) *kafkaPublisher {
	return &kafkaPublisher{
		writer:         w,
		enveloper:      newEnveloper(nower, uuider),
		publishTimeout: defaultPublishTimeout,
	}
}

func (p *kafkaPublisher) CreateTopic(c context.Context, topic string) error {
	// Brokers auto-create topics on first write.
	return nil
}

func (p *kafkaPublisher) Publish(c context.Context, topic string, event Event) error {
	envelope, err := p.enveloper.do(topic, event)
	if err != nil {
		return fmt.Errorf("error creating envelope: %s", err)
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("error marshalling envelope: %s", err)
	}

	publishCtx, cancel := context.WithTimeout(c, p.publishTimeout)
	defer cancel()

	err = p.writer.WriteMessages(publishCtx, skafka.Message{
		Topic: topic,
		Key:   []byte(envelope.AggregateUID),
		Value: data,
		Time:  envelope.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("error publishing event %s: %s", envelope, err)
	}

	return nil
}
