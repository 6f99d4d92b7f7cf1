package fault

import "errors"

var (
	// ErrInvalidElement is returned when a candidate record fails its own
	// validation. The collection is left untouched.
	ErrInvalidElement = errors.New("element is not valid")

	// ErrNotFound is returned when no record carries the requested id.
	ErrNotFound = errors.New("element not found")

	ErrPositionOutOfRange = errors.New("position out of range")
	ErrNilStoreable       = errors.New("nil storeable")
	ErrTypeMismatch       = errors.New("type mismatch")
)

var (
	ErrStorageNotFound    = errors.New("storage not found")
	ErrStorageOpenFailed  = errors.New("storage open failed")
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrBucketCreateFailed = errors.New("bucket create failed")
	ErrUnmarshalFailed    = errors.New("unmarshal failed")
	ErrMarshalFailed      = errors.New("marshal failed")
	ErrPutFailed          = errors.New("put failed")
	ErrUnknownFormat      = errors.New("unknown storage format")
)
