package contacts_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xRadioAc7iv/go-contacts/contacts"
	"github.com/0xRadioAc7iv/go-contacts/core"
	"github.com/0xRadioAc7iv/go-contacts/internal/record"
)

var quiet = contacts.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

func TestOpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.db")

	store, err := contacts.Open(contacts.WithFile(path), quiet)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, 0, store.Len())
	assert.Equal(t, path, store.FilePath)
}

func TestOpenLoadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.db")

	first, err := contacts.Open(contacts.WithFile(path), quiet)
	require.NoError(t, err)
	require.NoError(t, first.Add(record.Record{FirstName: "Jason", LastName: "Jerrod"}))
	first.Close()

	second, err := contacts.Open(contacts.WithFile(path), quiet)
	require.NoError(t, err)
	defer second.Close()

	assert.Equal(t, []core.Entry{{Index: 1, LastName: "Jerrod", FirstName: "Jason"}}, second.List())

	t.Run("autoload can be switched off", func(t *testing.T) {
		s, err := contacts.Open(contacts.WithFile(path), contacts.WithAutoLoad(false), quiet)
		require.NoError(t, err)
		defer s.Close()
		assert.Equal(t, 0, s.Len())
	})
}

func TestOpenRefusesDamagedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.db")
	require.NoError(t, os.WriteFile(path, make([]byte, 100), 0644))

	_, err := contacts.Open(contacts.WithFile(path), quiet)
	assert.ErrorIs(t, err, core.ErrTruncatedFile)
}

func TestOpenExclusive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.db")

	first, err := contacts.Open(contacts.WithFile(path), contacts.WithExclusive(true), quiet)
	require.NoError(t, err)

	_, err = contacts.Open(contacts.WithFile(path), contacts.WithExclusive(true), quiet)
	assert.Error(t, err)

	first.Close()

	again, err := contacts.Open(contacts.WithFile(path), contacts.WithExclusive(true), quiet)
	require.NoError(t, err)
	again.Close()
}
