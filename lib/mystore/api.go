package mystore

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Driver identifiers supported by the store factory.
const (
	DriverFile      = "file"
	DriverInMemory  = "inmem"
	DriverSqlite    = "sqlite"
	DriverRedis     = "redis"
	DriverDatastore = "datastore"
)

type Config struct {
	Driver   string
	Path     string // file to write for the file driver, database file for sqlite
	Addr     string // host:port for redis
	Username string
	Password string
	DB       int
	Prefix   string
}

//go:generate mockgen -source=api.go -package mystore -destination store_mock.go Store
type Store[T any] interface {
	Put(c context.Context, uid string, value T) error
	Get(c context.Context, uid string) (T, bool, error)
	Remove(c context.Context, uid string) error
	List(c context.Context) ([]T, error)
}

func New[T any](c context.Context, cfg Config) (Store[T], func(), error) {
	driver := cfg.Driver
	if driver == "" {
		if os.Getenv("GOOGLE_CLOUD_PROJECT") != "" {
			driver = DriverDatastore
		} else {
			driver = DriverFile
		}
	}

	switch driver {
	case DriverFile:
		return newFileStore[T](c, cfg.Path)
	case DriverInMemory:
		return newInMemoryStore[T](c)
	case DriverSqlite:
		return newSqliteStore[T](c, cfg.Path)
	case DriverRedis:
		return newRedisStore[T](c, cfg)
	case DriverDatastore:
		return newGcloudStore[T](c)
	default:
		return nil, nil, fmt.Errorf("unsupported store driver: %s", driver)
	}
}

func kindOf[T any]() string {
	kind := fmt.Sprintf("%T", *new(T))
	if strings.Contains(kind, ".") {
		kind = strings.Split(kind, ".")[1]
	}

	return kind
}
