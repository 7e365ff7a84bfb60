package mystore

import (
	"context"
	"sync"
)

type inMemoryStore[T any] struct {
	sync.Mutex
	items map[string]T
}

func newInMemoryStore[T any](c context.Context) (*inMemoryStore[T], func(), error) {
	return &inMemoryStore[T]{
		items: make(map[string]T),
	}, func() {}, nil
}

func (s *inMemoryStore[T]) Put(c context.Context, uid string, value T) error {
	s.Lock()
	defer s.Unlock()

	s.items[uid] = value

	return nil
}

func (s *inMemoryStore[T]) Get(c context.Context, uid string) (T, bool, error) {
	s.Lock()
	defer s.Unlock()

	result, exists := s.items[uid]

	return result, exists, nil
}

func (s *inMemoryStore[T]) Remove(c context.Context, uid string) error {
	s.Lock()
	defer s.Unlock()

	delete(s.items, uid)

	return nil
}

func (s *inMemoryStore[T]) List(c context.Context) ([]T, error) {
	s.Lock()
	defer s.Unlock()

	result := make([]T, 0, len(s.items))
	for _, v := range s.items {
		result = append(result, v)
	}

	return result, nil
}
