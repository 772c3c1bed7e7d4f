// Package dnsname decodes and encodes DNS domain names in wire format.
//
// Scanning handles label compression as specified in RFC 1035 section 4.1.4.
// Compression pointers in hostile input are the classic DNS decompression
// attack surface, so every followed pointer must target a strictly smaller
// offset than any pointer followed before it. Offsets then form a strictly
// decreasing sequence bounded below by zero, which rules out self-references
// and mutual cycles and caps pointer hops at the message length.
//
// Encoding always writes literal labels; compression is never emitted.
package dnsname

import (
	"encoding/binary"
	"strings"
)

// maxLabelLength is the longest label the encoder accepts.
const maxLabelLength = 62

// Name is a DNS domain name.
//
// A Name produced by Scan is a view: it keeps a sub-slice of the message it
// was parsed from and must not outlive that buffer. A Name produced by
// FromString owns its dotted string and has no wire view.
type Name struct {
	// wire is the span this name occupies at its original location in the
	// message, through the terminator or the first compression pointer.
	// nil for names built with FromString.
	wire []byte

	// text is the reconstructed dotted representation.
	text string
}

// FromString creates an owned Name from a dotted string.
func FromString(s string) Name {
	return Name{text: s}
}

// Scan decodes a possibly-compressed domain name.
//
// data is the sub-buffer where the name starts. original is the full message
// buffer; compression offsets are relative to its start. The returned Name
// references data and is only valid while the buffer is.
func Scan(data, original []byte) (Name, error) {
	parse := data
	pos := 0
	// Position of the first compression pointer in data, or -1 if none was
	// followed. It determines the span the name occupies at its original
	// location.
	returnPos := -1
	// Smallest pointer target followed so far. Starting at the full message
	// length permits the first jump to land anywhere; every later jump must
	// land strictly before the previous one.
	smallest := len(original)

	if len(parse) == 0 {
		return Name{}, ErrUnexpectedEOF
	}

	var labels []string
	b := parse[pos]
	for b != 0 {
		switch {
		case b&0xC0 == 0xC0:
			if len(parse) < pos+2 {
				return Name{}, ErrUnexpectedEOF
			}
			off := int(binary.BigEndian.Uint16(parse[pos:pos+2]) & 0x3FFF)
			if off >= len(original) {
				return Name{}, ErrUnexpectedEOF
			}
			if returnPos < 0 {
				returnPos = pos
			}
			if off >= smallest {
				return Name{}, ErrBadPointer
			}
			smallest = off
			pos = 0
			parse = original[off:]
		case b&0xC0 == 0:
			end := pos + int(b) + 1
			if len(parse) < end {
				return Name{}, ErrUnexpectedEOF
			}
			label := parse[pos+1 : end]
			if !isASCII(label) {
				return Name{}, ErrLabelNotASCII
			}
			labels = append(labels, string(label))
			pos = end
			if len(parse) <= pos {
				return Name{}, ErrUnexpectedEOF
			}
		default:
			return Name{}, ErrUnknownLabelFormat
		}
		b = parse[pos]
	}

	span := pos + 1
	if returnPos >= 0 {
		span = returnPos + 2
	}
	return Name{
		wire: data[:span],
		text: strings.Join(labels, "."),
	}, nil
}

// String returns the dotted representation of the name.
func (n Name) String() string {
	return n.text
}

// Bytes encodes the name as literal length-prefixed labels ending in a zero
// byte. Compression is never emitted. Empty labels (leading, trailing, or
// doubled dots) are skipped, so a trailing-dot FQDN encodes the same as its
// bare form and "" or "." encode to the bare terminator.
func (n Name) Bytes() ([]byte, error) {
	buf := make([]byte, 0, len(n.text)+2)
	for _, label := range strings.Split(n.text, ".") {
		if len(label) == 0 {
			continue
		}
		if len(label) > maxLabelLength {
			return nil, ErrLabelTooLong
		}
		buf = append(buf, byte(len(label)))
		buf = append(buf, label...)
	}
	return append(buf, 0), nil
}

// OctetLength returns the number of octets Bytes serializes for this name:
// one length byte plus content per non-empty label, plus the terminator.
func (n Name) OctetLength() int {
	total := 1
	for _, label := range strings.Split(n.text, ".") {
		if len(label) == 0 {
			continue
		}
		total += 1 + len(label)
	}
	return total
}

// ByteLen returns the number of bytes the name occupied at its original
// location in the scanned message: up to and including the terminator, or the
// 2-byte pointer field if the name was compressed. Zero for owned names.
func (n Name) ByteLen() int {
	return len(n.wire)
}

// isASCII reports whether every byte is below 0x80.
func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}
