package mystore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"cloud.google.com/go/datastore"
)

type gcloudStore[T any] struct {
	client *datastore.Client
	kind   string
}

// datastoreEnvelope wraps the JSON serialization of a record so that
// arbitrary record types can be stored without datastore index mapping.
type datastoreEnvelope struct {
	Payload []byte `datastore:",noindex"`
}

func newGcloudStore[T any](c context.Context) (*gcloudStore[T], func(), error) {
	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	client, err := datastore.NewClient(c, projectID)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating datastore-client: %s", err)
	}

	return &gcloudStore[T]{
			client: client,
			kind:   kindOf[T](),
		}, func() {
			client.Close()
		}, nil
}

func (s *gcloudStore[T]) Put(c context.Context, uid string, value T) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error marshalling entity %s with uid %s: %s", s.kind, uid, err)
	}

	_, err = s.client.Put(c, datastore.NameKey(s.kind, uid, nil), &datastoreEnvelope{Payload: payload})
	if err != nil {
		return fmt.Errorf("error storing entity %s with uid %s: %s", s.kind, uid, err)
	}

	return nil
}

func (s *gcloudStore[T]) Get(c context.Context, uid string) (T, bool, error) {
	value := new(T)

	envelope := datastoreEnvelope{}
	err := s.client.Get(c, datastore.NameKey(s.kind, uid, nil), &envelope)
	if err != nil {
		if err == datastore.ErrNoSuchEntity {
			return *value, false, nil
		}

		return *value, false, fmt.Errorf("error fetching entity %s with uid %s: %s", s.kind, uid, err)
	}

	err = json.Unmarshal(envelope.Payload, value)
	if err != nil {
		return *value, false, fmt.Errorf("error unmarshalling entity %s with uid %s: %s", s.kind, uid, err)
	}

	return *value, true, nil
}

func (s *gcloudStore[T]) Remove(c context.Context, uid string) error {
	err := s.client.Delete(c, datastore.NameKey(s.kind, uid, nil))
	if err != nil && err != datastore.ErrNoSuchEntity {
		return fmt.Errorf("error removing entity %s with uid %s: %s", s.kind, uid, err)
	}

	return nil
}

func (s *gcloudStore[T]) List(c context.Context) ([]T, error) {
	envelopes := []datastoreEnvelope{}

	q := datastore.NewQuery(s.kind).Limit(100)
	_, err := s.client.GetAll(c, q, &envelopes)
	if err != nil {
		return nil, fmt.Errorf("error fetching all entities %s: %s", s.kind, err)
	}

	result := make([]T, 0, len(envelopes))
	for _, envelope := range envelopes {
		value := new(T)
		err = json.Unmarshal(envelope.Payload, value)
		if err != nil {
			return nil, fmt.Errorf("error unmarshalling entity %s: %s", s.kind, err)
		}

		result = append(result, *value)
	}

	return result, nil
}
