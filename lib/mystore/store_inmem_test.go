package mystore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testAccount struct {
	UID   string
	Email string
}

var (
	account = testAccount{UID: "123", Email: "someone@example.org"}
)

func TestInMemoryStore(t *testing.T) {
	c := context.TODO()
	store, cleanup, err := newInMemoryStore[testAccount](c)
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
