package console_test

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xRadioAc7iv/go-contacts/core"
	"github.com/0xRadioAc7iv/go-contacts/internal/console"
	"github.com/0xRadioAc7iv/go-contacts/internal/record"
)

// scriptedInput replays lines and then reports end of input.
type scriptedInput struct {
	lines   []string
	prompts []string
}

func (s *scriptedInput) Readline() (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	next := s.lines[0]
	s.lines = s.lines[1:]
	if next == "^C" {
		return "", readline.ErrInterrupt
	}
	return next, nil
}

func (s *scriptedInput) SetPrompt(prompt string) {
	s.prompts = append(s.prompts, prompt)
}

func newStore(t *testing.T) *core.Store {
	t.Helper()
	return &core.Store{
		FilePath: filepath.Join(t.TempDir(), "contacts.db"),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func run(t *testing.T, store *core.Store, lines ...string) (string, *scriptedInput) {
	t.Helper()

	in := &scriptedInput{lines: lines}
	var out bytes.Buffer

	c := console.New(store, in, &out)
	c.NewID = func() string { return "fixed-id" }

	require.NoError(t, c.Run())
	return out.String(), in
}

// nine answers for the add prompts, first and last name first
func fields(first, last string) []string {
	return []string{first, last, "USA", "CA", "1 Main St", "", "90210", "555-0100", "555-0199"}
}

func TestConsoleAdd(t *testing.T) {
	store := newStore(t)

	lines := append([]string{"1"}, fields("Jason", "Jerrod")...)
	lines = append(lines, "5")
	out, in := run(t, store, lines...)

	assert.Contains(t, out, "Add New Contact")
	assert.Contains(t, out, "Contact added.")
	assert.Contains(t, out, "Goodbye.")
	assert.Contains(t, in.prompts, "First Name: ")
	assert.Contains(t, in.prompts, "Work Phone: ")

	require.Equal(t, 1, store.Len())
	got, _ := store.Get(1)
	assert.Equal(t, record.Record{
		ID:        "fixed-id",
		FirstName: "Jason",
		LastName:  "Jerrod",
		Country:   "USA",
		State:     "CA",
		Address1:  "1 Main St",
		Zip:       "90210",
		HomePhone: "555-0100",
		WorkPhone: "555-0199",
	}, got)

	data, err := os.ReadFile(store.FilePath)
	require.NoError(t, err)
	assert.Len(t, data, record.RecordSize)
}

func TestConsoleAddAtCapacity(t *testing.T) {
	store := newStore(t)
	for i := 0; i < core.MaxContacts; i++ {
		require.NoError(t, store.Add(record.Record{FirstName: "F", LastName: "L"}))
	}

	out, _ := run(t, store, "1", "5")

	assert.Contains(t, out, "[Maximum Contacts Reached]")
	assert.Equal(t, core.MaxContacts, store.Len())
}

func TestConsoleAddRepromptsOversizedField(t *testing.T) {
	store := newStore(t)

	lines := []string{"1", strings.Repeat("j", 300)}
	lines = append(lines, fields("Jason", "Jerrod")...)
	out, _ := run(t, store, lines...)

	assert.Contains(t, out, "[Field too long, at most 255 bytes]")
	got, err := store.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Jason", got.FirstName)
}

func TestConsoleInlineAdd(t *testing.T) {
	store := newStore(t)

	out, _ := run(t, store, `add first_name="Mary Ann" last_name=Lee zip=02139`, "quit")

	assert.Contains(t, out, "Contact added.")
	got, err := store.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Mary Ann", got.FirstName)
	assert.Equal(t, "Lee", got.LastName)
	assert.Equal(t, "02139", got.Zip)
	assert.Equal(t, "fixed-id", got.ID)

	t.Run("unknown field", func(t *testing.T) {
		out, _ := run(t, store, "add nickname=Mo")
		assert.Contains(t, out, `Unknown field "nickname".`)
		assert.Equal(t, 1, store.Len())
	})
}

func TestConsoleEdit(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Add(record.Record{FirstName: "Jane", LastName: "Doe", Zip: "12345"}))

	// choice 9 is out of range and asked again
	lines := []string{"2", "9", "1", "", "Smith", "", "", "", "", "", "", ""}
	out, in := run(t, store, lines...)

	assert.Contains(t, out, "1)  Doe, Jane")
	assert.Contains(t, out, "Press <ENTER> to keep default.")
	assert.Contains(t, out, "Contact Info Updated.")
	assert.Contains(t, in.prompts, "Edit First Name  (default: Jane): ")
	assert.Contains(t, in.prompts, "Edit Country  (default: <empty>): ")

	got, _ := store.Get(1)
	assert.Equal(t, "Jane", got.FirstName)
	assert.Equal(t, "Smith", got.LastName)
	assert.Equal(t, "12345", got.Zip)
}

func TestConsoleFind(t *testing.T) {
	store := newStore(t)

	t.Run("empty store", func(t *testing.T) {
		out, _ := run(t, store, "3")
		assert.Contains(t, out, "[No Contacts Found]")
	})

	require.NoError(t, store.Add(record.Record{FirstName: "Jason", LastName: "Jerrod", Country: "USA"}))
	require.NoError(t, store.Add(record.Record{FirstName: "Jane", LastName: "Doe"}))

	out, _ := run(t, store, "find", "1")

	assert.Contains(t, out, "1)  Jerrod, Jason\n2)  Doe, Jane")
	assert.Contains(t, out, "Contact Info")
	assert.Contains(t, out, "First Name: Jason\n")
	assert.Contains(t, out, "Country: USA\n")
	assert.Contains(t, out, "Address Line 2: \n")
}

func TestConsoleLoad(t *testing.T) {
	t.Run("reads contacts from disk", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Add(record.Record{FirstName: "Jason", LastName: "Jerrod"}))

		fresh := &core.Store{FilePath: store.FilePath, Logger: store.Logger}
		out, _ := run(t, fresh, "4")

		assert.Contains(t, out, `Read contact "Jerrod, Jason".`)
		assert.Contains(t, out, "Loaded 1 contacts.")
		assert.Equal(t, 1, fresh.Len())
	})

	t.Run("failure clears memory", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Add(record.Record{FirstName: "Jason", LastName: "Jerrod"}))
		require.NoError(t, os.WriteFile(store.FilePath, make([]byte, record.RecordSize+10), 0644))

		out, _ := run(t, store, "load")

		assert.Contains(t, out, "Failed reading contacts: Contacts file is truncated. Contacts in memory were cleared.")
		assert.Equal(t, 0, store.Len())
	})
}

func TestConsoleBackupRestore(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Add(record.Record{FirstName: "Jason", LastName: "Jerrod"}))

	snapshot := filepath.Join(t.TempDir(), "snap.zst")
	out, _ := run(t, store, "backup "+snapshot, `add first_name=Extra`, "restore "+snapshot)

	assert.Contains(t, out, "Backup written to "+snapshot+".")
	assert.Contains(t, out, "Restored 1 contacts.")
	assert.Equal(t, 1, store.Len())

	out, _ = run(t, store, "backup", "restore a b")
	assert.Contains(t, out, "Usage: backup PATH")
	assert.Contains(t, out, "Usage: restore PATH")
}

func TestConsoleInterruptReturnsToMenu(t *testing.T) {
	store := newStore(t)

	out, _ := run(t, store, "1", "Jason", "^C", "5")

	assert.Equal(t, 2, strings.Count(out, "Contacts Database Menu"))
	assert.Equal(t, 0, store.Len())
}

func TestConsoleUnknownInput(t *testing.T) {
	store := newStore(t)

	out, _ := run(t, store, "dance", `add first_name="open`, "help", "exit")

	assert.Contains(t, out, `Unknown command "dance". Type help for usage.`)
	assert.Contains(t, out, "Could not parse command")
	assert.Contains(t, out, "backup PATH")
	assert.Contains(t, out, "Goodbye.")
}
