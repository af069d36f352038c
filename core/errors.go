package core

import (
	"errors"

	"github.com/0xRadioAc7iv/go-contacts/internal/record"
)

// Every Store operation returns one of these (possibly wrapped); none of
// them leaves the Store unusable. Match with errors.Is.
var (
	// ErrFileOpenFailed means the backing file could not be opened for
	// reading (Load) or writing (Save). The os error is wrapped alongside.
	ErrFileOpenFailed = errors.New("could not open contacts file")

	// ErrTruncatedFile means the file size is not a multiple of
	// record.RecordSize.
	ErrTruncatedFile = record.ErrTruncatedFile

	// ErrMalformedRecord means a record slot has no terminating zero byte.
	ErrMalformedRecord = record.ErrMalformedRecord

	// ErrFieldTooLong means a value is longer than record.MaxFieldLength.
	ErrFieldTooLong = record.ErrFieldTooLong

	// ErrInvalidField means a value contains a zero byte.
	ErrInvalidField = record.ErrInvalidField

	// ErrIndexOutOfRange means a 1-based index is outside [1, Len()].
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrCapacityExceeded means the Store already holds MaxContacts records.
	ErrCapacityExceeded = errors.New("maximum contacts reached")
)
