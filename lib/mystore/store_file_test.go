package mystore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileStore(t *testing.T) {
	c := context.TODO()
	path := filepath.Join(t.TempDir(), "record.json")
	store, cleanup, err := newFileStore[testAccount](c, path)
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

	t.Run("File holds exactly the marshalled record", func(t *testing.T) {
		data, err := os.ReadFile(path)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"UID":"123","Email":"someone@example.org"}`, string(data))
	})

	t.Run("Get found", func(t *testing.T) {
		got, found, err := store.Get(c, account.UID)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, account, got)
	})

	t.Run("Put overwrites wholesale", func(t *testing.T) {
		other := testAccount{UID: "456", Email: "other@example.org"}
		err = store.Put(c, other.UID, other)
		assert.NoError(t, err)

		got, found, err := store.Get(c, other.UID)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, other, got)

		data, err := os.ReadFile(path)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"UID":"456","Email":"other@example.org"}`, string(data))
	})

	t.Run("List", func(t *testing.T) {
		all, err := store.List(c)
		assert.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("Remove", func(t *testing.T) {
		err = store.Remove(c, account.UID)
		assert.NoError(t, err)

		_, found, err := store.Get(c, account.UID)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Get corrupt file", func(t *testing.T) {
		err = os.WriteFile(path, []byte("not json"), 0600)
		assert.NoError(t, err)

		_, _, err := store.Get(c, account.UID)
		assert.Error(t, err)
	})
}
