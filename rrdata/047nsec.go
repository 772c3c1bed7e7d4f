package rrdata

import (
	"fmt"

	"github.com/haukened/dns-wire/domain"
)

// NSEC is a next-secure record (RFC 4034 section 4). The type code is wired
// into the dispatch table, but the codec does not exist yet; decoding an NSEC
// record fails with ErrNotImplemented rather than falling through to the
// Unknown passthrough.
type NSEC struct{}

// decodeNSEC always fails until the NSEC codec is implemented.
func decodeNSEC(_, _ []byte) (RData, error) {
	return nil, fmt.Errorf("NSEC record decoding: %w", ErrNotImplemented)
}

// TypeCode returns the numeric record type for NSEC records.
func (NSEC) TypeCode() domain.RRType {
	return domain.RRTypeNSEC
}

// Length returns zero until the NSEC codec is implemented.
func (NSEC) Length() uint16 {
	return 0
}

// Bytes always fails until the NSEC codec is implemented.
func (NSEC) Bytes() ([]byte, error) {
	return nil, fmt.Errorf("NSEC record encoding: %w", ErrNotImplemented)
}
