package rrdata

import (
	"iter"

	"github.com/haukened/dns-wire/domain"
)

// txtSegmentLength is the largest content length a single TXT segment holds.
const txtSegmentLength = 255

// TXT is a text record (RFC 1035 section 3.3.14).
//
// The wire form is a concatenation of length-prefixed segments of 0-255
// opaque bytes each. Segments are not required to be UTF-8; consumers that
// care about per-segment content iterate with Segments.
type TXT struct {
	data []byte
}

// TXTFromString builds a TXT record from a single string, splitting it at
// 255-byte boundaries: every segment but the last is exactly 255 bytes, and
// the byte-exact boundaries are preserved on the wire.
func TXTFromString(s string) TXT {
	bytes := []byte(s)
	data := make([]byte, 0, len(bytes)+len(bytes)/txtSegmentLength+1)
	for pos := 0; pos < len(bytes); {
		n := len(bytes) - pos
		if n > txtSegmentLength {
			n = txtSegmentLength
		}
		data = append(data, byte(n))
		data = append(data, bytes[pos:pos+n]...)
		pos += n
	}
	return TXT{data: data}
}

// decodeTXT validates that every declared segment length fits within the
// remaining payload and keeps the raw bytes. Segment content is opaque and
// is not validated further.
func decodeTXT(rdata, _ []byte) (RData, error) {
	if len(rdata) < 1 {
		return nil, ErrWrongRdataLength
	}
	for pos := 0; pos < len(rdata); {
		n := int(rdata[pos])
		pos++
		if len(rdata) < pos+n {
			return nil, ErrWrongRdataLength
		}
		pos += n
	}
	data := make([]byte, len(rdata))
	copy(data, rdata)
	return TXT{data: data}, nil
}

// Segments iterates over the record's segment slices in wire order. The
// sequence is restartable and the yielded slices alias the record's storage.
func (r TXT) Segments() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for pos := 0; pos < len(r.data); {
			n := int(r.data[pos])
			pos++
			if !yield(r.data[pos : pos+n]) {
				return
			}
			pos += n
		}
	}
}

// TypeCode returns the numeric record type for TXT records.
func (TXT) TypeCode() domain.RRType {
	return domain.RRTypeTXT
}

// Length returns the encoded byte length of all segments.
func (r TXT) Length() uint16 {
	return uint16(len(r.data))
}

// Bytes returns the concatenated length-prefixed segments.
func (r TXT) Bytes() ([]byte, error) {
	return r.data, nil
}
