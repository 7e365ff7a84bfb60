package mystore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// fileStore keeps a single record in one flat file. Every Put overwrites
// the previous file content wholesale, whatever uid it was written under.
type fileStore[T any] struct {
	path string
}

func newFileStore[T any](c context.Context, path string) (*fileStore[T], func(), error) {
	if path == "" {
		return nil, nil, fmt.Errorf("file store requires a path")
	}

	return &fileStore[T]{
		path: path,
	}, func() {}, nil
}

func (s *fileStore[T]) Put(c context.Context, uid string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error marshalling record %s: %s", uid, err)
	}

	err = os.WriteFile(s.path, data, 0600)
	if err != nil {
		return fmt.Errorf("error writing file %s: %s", s.path, err)
	}

	return nil
}

func (s *fileStore[T]) Get(c context.Context, uid string) (T, bool, error) {
	value := new(T)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return *value, false, nil
		}

		return *value, false, fmt.Errorf("error reading file %s: %s", s.path, err)
	}

	err = json.Unmarshal(data, value)
	if err != nil {
		return *value, false, fmt.Errorf("error unmarshalling file %s: %s", s.path, err)
	}

	return *value, true, nil
}

func (s *fileStore[T]) Remove(c context.Context, uid string) error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error removing file %s: %s", s.path, err)
	}

	return nil
}

func (s *fileStore[T]) List(c context.Context) ([]T, error) {
	value, exists, err := s.Get(c, "")
	if err != nil {
		return nil, err
	}
	if !exists {
		return []T{}, nil
	}

	return []T{value}, nil
}
