package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/haukened/dns-wire/common/log"
	"github.com/haukened/dns-wire/dnsname"
	"github.com/haukened/dns-wire/domain"
	"github.com/haukened/dns-wire/rrdata"
)

// Message is a fully parsed DNS message.
//
// Record names and name-bearing RDATA are views into the buffer passed to
// Parse; the Message must not outlive that buffer.
type Message struct {
	Header      Header
	Questions   []Question
	Answers     []ResourceRecord
	Nameservers []ResourceRecord
	Additional  []ResourceRecord
}

// Parse decodes a complete DNS message. Parsing is all-or-nothing: the first
// malformed name or record aborts with its error.
func Parse(data []byte) (*Message, error) {
	header, err := parseHeader(data)
	if err != nil {
		return nil, err
	}

	msg := &Message{Header: header}
	offset := headerSize

	for i := 0; i < int(header.Questions); i++ {
		var q Question
		q, offset, err = parseQuestion(data, offset)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		msg.Questions = append(msg.Questions, q)
	}

	sections := []struct {
		name  string
		count uint16
		into  *[]ResourceRecord
	}{
		{"answer", header.Answers, &msg.Answers},
		{"authority", header.Nameservers, &msg.Nameservers},
		{"additional", header.Additional, &msg.Additional},
	}
	for _, s := range sections {
		for i := 0; i < int(s.count); i++ {
			var rr ResourceRecord
			rr, offset, err = parseRecord(data, offset)
			if err != nil {
				return nil, fmt.Errorf("%s record %d: %w", s.name, i, err)
			}
			*s.into = append(*s.into, rr)
		}
	}

	log.Debug(map[string]any{
		"id":         header.ID,
		"questions":  len(msg.Questions),
		"answers":    len(msg.Answers),
		"authority":  len(msg.Nameservers),
		"additional": len(msg.Additional),
	}, "Parsed DNS message")

	return msg, nil
}

// parseQuestion decodes one question entry starting at offset.
func parseQuestion(data []byte, offset int) (Question, int, error) {
	if offset >= len(data) {
		return Question{}, 0, dnsname.ErrUnexpectedEOF
	}
	name, err := dnsname.Scan(data[offset:], data)
	if err != nil {
		return Question{}, 0, err
	}
	offset += name.ByteLen()
	if len(data) < offset+4 {
		return Question{}, 0, dnsname.ErrUnexpectedEOF
	}
	qtype := binary.BigEndian.Uint16(data[offset : offset+2])
	rawClass := binary.BigEndian.Uint16(data[offset+2 : offset+4])
	return Question{
		Name:          name.String(),
		Type:          domain.RRType(qtype),
		Class:         domain.RRClass(rawClass &^ classUnicastBit),
		PreferUnicast: rawClass&classUnicastBit != 0,
	}, offset + 4, nil
}

// parseRecord decodes one resource record starting at offset, dispatching
// the RDATA bytes to the type-specific decoder with the full message buffer
// so compressed names inside the payload resolve.
func parseRecord(data []byte, offset int) (ResourceRecord, int, error) {
	if offset >= len(data) {
		return ResourceRecord{}, 0, dnsname.ErrUnexpectedEOF
	}
	name, err := dnsname.Scan(data[offset:], data)
	if err != nil {
		return ResourceRecord{}, 0, err
	}
	offset += name.ByteLen()
	if len(data) < offset+10 {
		return ResourceRecord{}, 0, dnsname.ErrUnexpectedEOF
	}
	rrType := domain.RRType(binary.BigEndian.Uint16(data[offset : offset+2]))
	rawClass := binary.BigEndian.Uint16(data[offset+2 : offset+4])
	ttl := binary.BigEndian.Uint32(data[offset+4 : offset+8])
	rdLen := int(binary.BigEndian.Uint16(data[offset+8 : offset+10]))
	offset += 10

	if len(data) < offset+rdLen {
		return ResourceRecord{}, 0, dnsname.ErrUnexpectedEOF
	}
	rdata, err := rrdata.Decode(rrType, data[offset:offset+rdLen], data)
	if err != nil {
		return ResourceRecord{}, 0, err
	}

	return ResourceRecord{
		Name:            name,
		Class:           domain.RRClass(rawClass &^ classUnicastBit),
		TTL:             ttl,
		MulticastUnique: rawClass&classUnicastBit != 0,
		Data:            rdata,
	}, offset + rdLen, nil
}
