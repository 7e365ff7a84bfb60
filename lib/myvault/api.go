package myvault

import (
	"context"

	"gcalgateway/lib/mystore"
)

const (
	CurrentCredentials = "currentCredentials"
)

type VaultReader[T any] interface {
	Get(c context.Context, uid string) (T, bool, error)
}

//go:generate mockgen -source=api.go -package myvault -destination vault_mock.go VaultReadWriter
type VaultReadWriter[T any] interface {
	Get(c context.Context, uid string) (T, bool, error)
	Put(c context.Context, uid string, value T) error
}

func New[T any](c context.Context, cfg mystore.Config) (VaultReadWriter[T], func(), error) {
	return mystore.New[T](c, cfg)
}
