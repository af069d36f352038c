package record

import (
	"bytes"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Record is one contact entry. Every field is stored on disk in its own
// fixed FieldSize slot, in the order the fields are declared here.
type Record struct {
	ID        string
	FirstName string
	LastName  string
	Country   string
	State     string
	Address1  string
	Address2  string
	Zip       string
	HomePhone string
	WorkPhone string
}

// FieldSize (256) * FieldCount (10) => RecordSize (2560)
const (
	FieldSize      = 256
	FieldCount     = 10
	RecordSize     = FieldSize * FieldCount
	MaxFieldLength = FieldSize - 1 // at least one zero byte terminates every slot
)

var (
	// ErrFieldTooLong is returned when a value does not fit in its slot.
	ErrFieldTooLong = errors.New("field too long")

	// ErrInvalidField is returned for values holding a zero byte, which
	// would end the field early on decode.
	ErrInvalidField = errors.New("field contains a zero byte")

	// ErrMalformedRecord means a block is not RecordSize bytes or one of
	// its slots has no terminating zero byte.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrTruncatedFile means the input ended inside a record block.
	ErrTruncatedFile = errors.New("truncated file")
)

// ValidateField reports whether value can be stored in a single slot.
func ValidateField(value string) error {
	if len(value) > MaxFieldLength {
		return errors.Wrapf(ErrFieldTooLong, "%d bytes, max %d", len(value), MaxFieldLength)
	}
	if strings.IndexByte(value, 0) >= 0 {
		return ErrInvalidField
	}
	return nil
}

// Validate checks every field of the record.
func (r *Record) Validate() error {
	for _, f := range Fields {
		if err := ValidateField(r.Get(f)); err != nil {
			return errors.Wrapf(err, "field %s", f.Name())
		}
	}
	return nil
}

// EncodeRecordToBytes lays the record out as FieldCount zero-padded slots.
//
// Each value is copied left-aligned into its slot at f.Offset(); the rest
// of the slot stays zero. The result is always RecordSize bytes.
func EncodeRecordToBytes(record *Record) ([]byte, error) {
	if err := record.Validate(); err != nil {
		return nil, err
	}

	buf := make([]byte, RecordSize)
	for _, f := range Fields {
		copy(buf[f.Offset():f.Offset()+FieldSize], record.Get(f))
	}

	return buf, nil
}

// DecodeRecordFromBytes reads every slot up to its first zero byte.
func DecodeRecordFromBytes(data []byte) (*Record, error) {
	if len(data) != RecordSize {
		return nil, errors.Wrapf(ErrMalformedRecord, "got %d bytes, want %d", len(data), RecordSize)
	}

	record := &Record{}
	for _, f := range Fields {
		slot := data[f.Offset() : f.Offset()+FieldSize]

		end := bytes.IndexByte(slot, 0)
		if end < 0 {
			return nil, errors.Wrapf(ErrMalformedRecord, "field %s has no terminator", f.Name())
		}

		record.Set(f, string(slot[:end]))
	}

	return record, nil
}

// ReadAll decodes consecutive record blocks until r is exhausted.
// A partial trailing block is never decoded; it yields ErrTruncatedFile
// together with the records read before it.
func ReadAll(r io.Reader) ([]Record, error) {
	records := []Record{}
	block := make([]byte, RecordSize)

	for {
		_, err := io.ReadFull(r, block)
		if err != nil {
			if err == io.EOF {
				return records, nil
			}
			if err == io.ErrUnexpectedEOF {
				return records, errors.Wrapf(ErrTruncatedFile, "partial block after %d records", len(records))
			}
			return records, err
		}

		record, err := DecodeRecordFromBytes(block)
		if err != nil {
			return records, errors.Wrapf(err, "record %d", len(records)+1)
		}

		records = append(records, *record)
	}
}

// WriteAll encodes every record and writes the blocks back to back.
// Nothing is written if any record fails to encode.
func WriteAll(w io.Writer, records []Record) error {
	blocks := make([][]byte, 0, len(records))
	for i := range records {
		encoded, err := EncodeRecordToBytes(&records[i])
		if err != nil {
			return errors.Wrapf(err, "record %d", i+1)
		}
		blocks = append(blocks, encoded)
	}

	for _, b := range blocks {
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	return nil
}

// Merge returns base with every non-empty field of update copied over it.
func Merge(base, update Record) Record {
	merged := base
	for _, f := range Fields {
		if v := update.Get(f); v != "" {
			merged.Set(f, v)
		}
	}
	return merged
}
