// Package backup stores zstd-compressed snapshots of a contacts file.
//
// A snapshot decompresses to exactly the bytes the backing file would
// hold for the same records, so the record layout is shared with it.
package backup

import (
	"bytes"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"

	"github.com/0xRadioAc7iv/go-contacts/internal/record"
)

// Write encodes records and writes them compressed to path, replacing any
// existing file.
func Write(path string, records []record.Record) error {
	var raw bytes.Buffer
	if err := record.WriteAll(&raw, records); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating backup")
	}

	zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		f.Close()
		return errors.Wrap(err, "creating zstd writer")
	}

	if _, err := zw.Write(raw.Bytes()); err != nil {
		zw.Close()
		f.Close()
		return errors.Wrap(err, "writing backup")
	}

	if err := zw.Close(); err != nil {
		f.Close()
		return errors.Wrap(err, "flushing backup")
	}

	return f.Close()
}

// Read decompresses the snapshot at path and decodes its records.
func Read(path string) ([]record.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening backup")
	}
	defer f.Close()

	zr, err := zstd.NewReader(f)
	if err != nil {
		return nil, errors.Wrap(err, "creating zstd reader")
	}
	defer zr.Close()

	records, err := record.ReadAll(zr)
	if err != nil {
		return nil, errors.Wrapf(err, "reading backup %s", path)
	}

	return records, nil
}
