// Package wire assembles and disassembles complete DNS messages: the 12-byte
// header, the question section, and the three resource-record sections.
// Names are delegated to package dnsname and record payloads to package
// rrdata. The encoder always writes names literally; it never emits
// compression pointers.
package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/haukened/dns-wire/dnsname"
	"github.com/haukened/dns-wire/domain"
)

// headerSize is the fixed size of the DNS message header region.
const headerSize = 12

// classUnicastBit is bit 15 of the class field. In a question it signals a
// unicast-response preference; in a record it is the multicast cache-flush
// bit. Both are multicast DNS conventions (RFC 6762 sections 5.4 and 10.2).
const classUnicastBit = 0x8000

// Header header flag masks.
const (
	flagResponse           = 0x8000
	flagOpcodeMask         = 0x7800
	flagAuthoritative      = 0x0400
	flagTruncated          = 0x0200
	flagRecursionDesired   = 0x0100
	flagRecursionAvailable = 0x0080
	flagAuthenticatedData  = 0x0020
	flagCheckingDisabled   = 0x0010
	flagRCodeMask          = 0x000F
)

// Header is the fixed 12-byte DNS message header.
type Header struct {
	ID                 uint16
	Query              bool // true for queries, false for responses
	Opcode             domain.Opcode
	Authoritative      bool
	Truncated          bool
	RecursionDesired   bool
	RecursionAvailable bool
	AuthenticatedData  bool
	CheckingDisabled   bool
	ResponseCode       domain.RCode

	// Section counts. The builder increments these as entries are added.
	Questions   uint16
	Answers     uint16
	Nameservers uint16
	Additional  uint16
}

// marshal writes the header into the first 12 bytes of buf.
func (h Header) marshal(buf []byte) {
	binary.BigEndian.PutUint16(buf[0:2], h.ID)

	var flags uint16
	if !h.Query {
		flags |= flagResponse
	}
	flags |= uint16(h.Opcode) << 11
	if h.Authoritative {
		flags |= flagAuthoritative
	}
	if h.Truncated {
		flags |= flagTruncated
	}
	if h.RecursionDesired {
		flags |= flagRecursionDesired
	}
	if h.RecursionAvailable {
		flags |= flagRecursionAvailable
	}
	if h.AuthenticatedData {
		flags |= flagAuthenticatedData
	}
	if h.CheckingDisabled {
		flags |= flagCheckingDisabled
	}
	flags |= uint16(h.ResponseCode) & flagRCodeMask
	binary.BigEndian.PutUint16(buf[2:4], flags)

	binary.BigEndian.PutUint16(buf[4:6], h.Questions)
	binary.BigEndian.PutUint16(buf[6:8], h.Answers)
	binary.BigEndian.PutUint16(buf[8:10], h.Nameservers)
	binary.BigEndian.PutUint16(buf[10:12], h.Additional)
}

// parseHeader reads the fixed header region from the start of data.
func parseHeader(data []byte) (Header, error) {
	if len(data) < headerSize {
		return Header{}, fmt.Errorf("message header: %w", dnsname.ErrUnexpectedEOF)
	}
	flags := binary.BigEndian.Uint16(data[2:4])
	return Header{
		ID:                 binary.BigEndian.Uint16(data[0:2]),
		Query:              flags&flagResponse == 0,
		Opcode:             domain.Opcode((flags & flagOpcodeMask) >> 11),
		Authoritative:      flags&flagAuthoritative != 0,
		Truncated:          flags&flagTruncated != 0,
		RecursionDesired:   flags&flagRecursionDesired != 0,
		RecursionAvailable: flags&flagRecursionAvailable != 0,
		AuthenticatedData:  flags&flagAuthenticatedData != 0,
		CheckingDisabled:   flags&flagCheckingDisabled != 0,
		ResponseCode:       domain.RCode(flags & flagRCodeMask),
		Questions:          binary.BigEndian.Uint16(data[4:6]),
		Answers:            binary.BigEndian.Uint16(data[6:8]),
		Nameservers:        binary.BigEndian.Uint16(data[8:10]),
		Additional:         binary.BigEndian.Uint16(data[10:12]),
	}, nil
}
