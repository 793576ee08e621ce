// Package errs defines the sentinel errors shared by the vislog packages.
//
// Errors are wrapped with additional context using fmt.Errorf("%w: ...") at the
// point of failure, so callers should match them with errors.Is.
package errs

import "errors"

// Container format errors.
var (
	ErrInvalidHeaderSize      = errors.New("invalid header size")
	ErrInvalidMagicNumber     = errors.New("invalid magic number")
	ErrUnsupportedVersion     = errors.New("unsupported container version")
	ErrInvalidIndexEntrySize  = errors.New("invalid index entry size")
	ErrInvalidIndexOffsets    = errors.New("invalid index offsets")
	ErrInvalidPayloadOffset   = errors.New("invalid payload offset")
	ErrInvalidNamesPayload    = errors.New("invalid dataset names payload")
	ErrInvalidDatasetName     = errors.New("invalid dataset name")
	ErrTooManyDatasets        = errors.New("too many datasets")
	ErrHashMismatch           = errors.New("dataset name hash mismatch")
	ErrHashCollision          = errors.New("dataset name hash collision")
	ErrDuplicateDataset       = errors.New("duplicate dataset")
	ErrDataPointCountMismatch = errors.New("data point count mismatch")
	ErrInvalidEncoding        = errors.New("invalid value encoding")
	ErrInvalidCompression     = errors.New("invalid compression")
	ErrChecksumMismatch       = errors.New("payload checksum mismatch")
)

// Container access errors.
var (
	ErrDatasetNotFound  = errors.New("dataset not found")
	ErrNoEventReference = errors.New("dataset has no event reference")
	ErrClosed           = errors.New("container closed")
)

// Loading and resampling errors.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidStep      = errors.New("invalid step")
	ErrInvalidReference = errors.New("invalid reference time series")
	ErrLengthMismatch   = errors.New("length mismatch")
	ErrEmptySeries      = errors.New("empty series")
	ErrNoInputs         = errors.New("no input files")
	ErrSignalMismatch   = errors.New("signal sets differ between files")
)
