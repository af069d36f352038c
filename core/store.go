package core

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"

	"github.com/0xRadioAc7iv/go-contacts/internal/backup"
	"github.com/0xRadioAc7iv/go-contacts/internal/lock"
	"github.com/0xRadioAc7iv/go-contacts/internal/record"
	"github.com/0xRadioAc7iv/go-contacts/internal/utils"
)

// Store is the in-memory, capacity-bounded list of contacts and the
// backing file it is persisted to.
//
// Every mutation rewrites the whole backing file. There is no append path
// and no temp-file-then-rename, so a failed write can leave the file
// partially written.
//
// A Store is not safe for concurrent use. Nothing stops two processes from
// rewriting the same file and losing each other's updates; Exclusive only
// guards against other Stores that also set it.
type Store struct {
	lockFile *os.File
	records  []record.Record

	// xxhash64 of the bytes last read from or written to FilePath.
	digest    uint64
	hasDigest bool

	FilePath  string
	Exclusive bool         // Hold an advisory lock on FilePath between Open and Close
	Logger    *slog.Logger // slog.Default() when nil
}

// Entry is one line of the enumerated contact list.
type Entry struct {
	Index     int // 1-based
	LastName  string
	FirstName string
}

// Open prepares the Store for use. It does not read the backing file;
// call Load for that.
func (s *Store) Open() error {
	if s.FilePath == "" {
		s.FilePath = DefaultFileName
	}

	if !s.Exclusive {
		return nil
	}

	lf, err := lock.LockFile(s.FilePath)
	if err != nil {
		s.logger().Error("Error locking contacts file", "file", s.FilePath, "err", err)
		return err
	}
	s.lockFile = lf

	return nil
}

// Close releases the lock taken by Open. In-memory records are kept.
func (s *Store) Close() {
	if s.lockFile != nil {
		lock.UnlockFile(s.lockFile)
		s.lockFile = nil
	}
}

// Load replaces the in-memory records with the contents of the backing
// file and returns how many were read.
//
// The in-memory records are cleared first and stay cleared when Load
// fails, whatever the reason (missing file, ErrTruncatedFile,
// ErrMalformedRecord). Load does not enforce MaxContacts.
func (s *Store) Load() (int, error) {
	s.records = nil
	s.hasDigest = false

	f, err := os.Open(s.FilePath)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrFileOpenFailed, err)
		s.fail("load", err)
		return 0, err
	}
	defer f.Close()

	h := xxhash.New()
	records, err := record.ReadAll(io.TeeReader(f, h))
	if err != nil {
		err = errors.Wrapf(err, "reading %s", s.FilePath)
		s.fail("load", err)
		return 0, err
	}

	for _, r := range records {
		s.logger().Debug("Read contact", "last_name", r.LastName, "first_name", r.FirstName)
	}

	s.records = records
	s.digest = h.Sum64()
	s.hasDigest = true

	s.logger().Info("Contacts loaded", "file", s.FilePath, "count", len(records))
	return len(records), nil
}

// Add appends r and rewrites the backing file.
//
// ErrCapacityExceeded and field validation errors leave the Store
// untouched. If only the rewrite fails, r stays in memory and the
// write error is returned.
func (s *Store) Add(r record.Record) error {
	if len(s.records) >= MaxContacts {
		return errors.Wrapf(ErrCapacityExceeded, "%d of %d", len(s.records), MaxContacts)
	}

	if err := r.Validate(); err != nil {
		return err
	}

	s.records = append(s.records, r)
	return s.Save()
}

// Edit merges update into the record at the 1-based index and rewrites
// the backing file. Empty fields in update keep the existing value.
func (s *Store) Edit(index int, update record.Record) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}

	if err := update.Validate(); err != nil {
		return err
	}

	s.records[index-1] = record.Merge(s.records[index-1], update)
	return s.Save()
}

// Save encodes every in-memory record and rewrites the backing file from
// scratch. On failure the in-memory records are unchanged.
func (s *Store) Save() error {
	var buf bytes.Buffer
	if err := record.WriteAll(&buf, s.records); err != nil {
		s.fail("save", err)
		return err
	}

	s.warnOnExternalChange()

	f, err := os.OpenFile(s.FilePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, DefaultFileMode)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrFileOpenFailed, err)
		s.fail("save", err)
		return err
	}

	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		err = errors.Wrapf(err, "writing %s", s.FilePath)
		s.fail("save", err)
		return err
	}

	if err := f.Close(); err != nil {
		err = errors.Wrapf(err, "closing %s", s.FilePath)
		s.fail("save", err)
		return err
	}

	s.digest = xxhash.Sum64(buf.Bytes())
	s.hasDigest = true

	s.logger().Debug("Contacts written", "file", s.FilePath, "count", len(s.records), "bytes", buf.Len())
	return nil
}

// List returns the enumerated view shown to the user, in insertion order.
func (s *Store) List() []Entry {
	entries := make([]Entry, 0, len(s.records))
	for i, r := range s.records {
		entries = append(entries, Entry{
			Index:     i + 1,
			LastName:  r.LastName,
			FirstName: r.FirstName,
		})
	}
	return entries
}

// Get returns a copy of the record at the 1-based index.
func (s *Store) Get(index int) (record.Record, error) {
	if err := s.checkIndex(index); err != nil {
		return record.Record{}, err
	}
	return s.records[index-1], nil
}

func (s *Store) Len() int {
	return len(s.records)
}

// Records returns a copy of every in-memory record.
func (s *Store) Records() []record.Record {
	return append([]record.Record(nil), s.records...)
}

// Backup writes a compressed snapshot of the in-memory records to path.
func (s *Store) Backup(path string) error {
	if err := backup.Write(path, s.records); err != nil {
		s.fail("backup", err)
		return err
	}

	s.logger().Info("Backup written", "path", path, "count", len(s.records))
	return nil
}

// Restore replaces the in-memory records with a snapshot written by
// Backup and rewrites the backing file. The Store is unchanged when the
// snapshot cannot be read. Like Load, MaxContacts is not enforced.
func (s *Store) Restore(path string) (int, error) {
	records, err := backup.Read(path)
	if err != nil {
		s.fail("restore", err)
		return 0, err
	}

	s.records = records
	if err := s.Save(); err != nil {
		return 0, err
	}

	s.logger().Info("Backup restored", "path", path, "count", len(records))
	return len(records), nil
}

func (s *Store) checkIndex(index int) error {
	if index < 1 || index > len(s.records) {
		return errors.Wrapf(ErrIndexOutOfRange, "%d not in [1, %d]", index, len(s.records))
	}
	return nil
}

// warnOnExternalChange logs when the backing file no longer holds what
// this Store last read or wrote. The rewrite still goes ahead.
func (s *Store) warnOnExternalChange() {
	current, err := os.ReadFile(s.FilePath)
	if err != nil {
		return
	}

	if !s.hasDigest {
		if len(current) > 0 {
			s.logger().Warn("Overwriting contacts file that was never loaded", "file", s.FilePath, "bytes", len(current))
		}
		return
	}

	if xxhash.Sum64(current) != s.digest {
		s.logger().Warn("Contacts file changed since last load, overwriting", "file", s.FilePath)
	}
}

func (s *Store) fail(op string, err error) {
	s.logger().Error("Contacts "+op+" failed", "file", s.FilePath, "err", err)
	utils.ReportError(err, map[string]string{"op": op, "file": s.FilePath})
}

func (s *Store) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
