package messaging

import (
	"context"
	"errors"
)

var (
	// ErrInvalidArgument marks a record the broker will never accept. It is
	// not retried.
	ErrInvalidArgument = errors.New("invalid event record")
	// ErrRecordHeadersClosed is returned when a record's metadata was
	// consumed by a failed attempt and cannot be sent again as is.
	ErrRecordHeadersClosed = errors.New("record headers closed")
)

type Header struct {
	Key   string
	Value []byte
}

// Record is one event ready to be sent. Headers belong to a single send
// attempt.
type Record struct {
	Topic   string
	Key     string
	Value   []byte
	Headers []Header
}

// Sender delivers one record. Implementations must honor ctx cancellation,
// return ErrInvalidArgument for records that can never be delivered and
// ErrRecordHeadersClosed when the record's headers cannot be reused for
// another attempt.
type Sender interface {
	Send(ctx context.Context, r Record) error
}
