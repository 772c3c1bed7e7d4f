package dnsname

import "errors"

// Errors returned while scanning or encoding domain names.
var (
	// ErrUnexpectedEOF means the buffer ended before the name structure completed.
	ErrUnexpectedEOF = errors.New("unexpected end of buffer")

	// ErrBadPointer means a compression pointer did not strictly decrease,
	// including a pointer that references itself.
	ErrBadPointer = errors.New("bad compression pointer")

	// ErrUnknownLabelFormat means a label introducer used a reserved bit pattern.
	ErrUnknownLabelFormat = errors.New("unknown label format")

	// ErrLabelNotASCII means a literal label contained a non-ASCII byte.
	ErrLabelNotASCII = errors.New("label is not ascii")

	// ErrLabelTooLong means a label exceeded 62 bytes during encoding.
	ErrLabelTooLong = errors.New("label too long")
)
