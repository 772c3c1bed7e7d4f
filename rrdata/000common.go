// Package rrdata decodes and encodes the type-specific payload (RDATA) of
// DNS resource records.
//
// Each supported record type has its own concrete kind implementing RData.
// Decoding dispatches on the numeric type code; codes without a registered
// decoder fall through to the Unknown passthrough so that unsupported record
// types survive a decode/encode cycle byte for byte.
package rrdata

import (
	"errors"

	"github.com/haukened/dns-wire/domain"
)

// Errors returned by record kind decoders and encoders.
var (
	// ErrWrongRdataLength means a record payload failed its kind's own
	// length validation rule.
	ErrWrongRdataLength = errors.New("wrong rdata length")

	// ErrNotImplemented marks a record kind whose type code is wired into
	// the dispatch table but whose codec does not exist yet.
	ErrNotImplemented = errors.New("not implemented")
)

// RData is the decoded payload of a resource record.
//
// Length reports the number of octets Bytes serializes; the two must agree
// for every kind, since the builder writes Length into the RDLENGTH field.
type RData interface {
	// TypeCode returns the numeric record type of this payload.
	TypeCode() domain.RRType

	// Length returns the encoded byte length of the payload.
	Length() uint16

	// Bytes serializes the payload to its wire representation.
	Bytes() ([]byte, error)
}

// decodeFunc parses one record kind. original is the full message buffer so
// that name-bearing kinds can resolve compression pointers across the whole
// message, not just their own RDATA slice.
type decodeFunc func(rdata, original []byte) (RData, error)
