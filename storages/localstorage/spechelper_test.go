package localstorage_test

import (
	"os"
	"path/filepath"
	"testing"

	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/fleet/storages/localstorage"
)

func NewLocalForTest(tb testing.TB) (*localstorage.Local, func()) {
	dbPath := filepath.Join(os.TempDir(), uuid.NewV4().String())
	storage, err := localstorage.NewLocal(dbPath)
	require.Nil(tb, err)

	teardown := func() {
		assert.Nil(tb, storage.Close())
		assert.Nil(tb, os.Remove(dbPath))
	}

	return storage, teardown
}
