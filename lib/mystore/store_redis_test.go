package mystore

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
)

func TestRedisStore(t *testing.T) {
	c := context.TODO()
	mr, err := miniredis.Run()
	assert.NoError(t, err)
	defer mr.Close()

	store, cleanup, err := newRedisStore[testAccount](c, Config{
		Driver: DriverRedis,
		Addr:   mr.Addr(),
	})
	assert.NoError(t, err)
	defer cleanup()

	t.Run("Get not found", func(t *testing.T) {
		_, found, err := store.Get(c, account.UID)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Put", func(t *testing.T) {
		err = store.Put(c, account.UID, account)
		assert.NoError(t, err)
	})

	t.Run("Get found", func(t *testing.T) {
		got, found, err := store.Get(c, account.UID)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, account, got)
	})

	t.Run("Keys carry the kind prefix", func(t *testing.T) {
		assert.True(t, mr.Exists("gcalgateway:testAccount:123"))
	})

	t.Run("List", func(t *testing.T) {
		all, err := store.List(c)
		assert.NoError(t, err)
		assert.Equal(t, []testAccount{account}, all)
	})

	t.Run("Remove", func(t *testing.T) {
		err = store.Remove(c, account.UID)
		assert.NoError(t, err)

		_, found, err := store.Get(c, account.UID)
		assert.NoError(t, err)
		assert.False(t, found)
	})
}
