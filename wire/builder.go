package wire

import (
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/net/idna"

	"github.com/haukened/dns-wire/common/log"
	"github.com/haukened/dns-wire/dnsname"
	"github.com/haukened/dns-wire/domain"
	"github.com/haukened/dns-wire/rrdata"
)

// maxSectionEntries is the largest count a 16-bit section counter can carry.
const maxSectionEntries = 65535

// ErrSectionFull means a message section already holds 65535 entries.
var ErrSectionFull = errors.New("message section is full")

// Builder assembles a DNS message from a header plus ordered sections.
//
// Only the question and answer sections are populated through the public
// contract; the nameserver and additional sections are reserved extension
// points and always serialize empty. A Builder is for single-owner,
// build-then-discard use and is not safe for concurrent mutation.
type Builder struct {
	header      Header
	questions   []Question
	answers     []ResourceRecord
	nameservers []ResourceRecord
	additional  []ResourceRecord
}

// NewBuilder creates a builder for a standard query with the given id.
// All section counts start at zero and no flags besides recursion-desired
// are set.
func NewBuilder(id uint16, recursionDesired bool) *Builder {
	return &Builder{
		header: Header{
			ID:               id,
			Query:            true,
			Opcode:           domain.OpcodeQuery,
			RecursionDesired: recursionDesired,
			ResponseCode:     domain.RCodeNoError,
		},
	}
}

// AddQuestion appends a question and increments the header's question count.
// Non-ASCII names are converted to punycode first; ASCII names pass through
// untouched so underscore service labels stay valid.
func (b *Builder) AddQuestion(name string, preferUnicast bool, qtype domain.RRType, qclass domain.RRClass) error {
	if b.header.Questions == maxSectionEntries {
		return fmt.Errorf("question section: %w", ErrSectionFull)
	}
	name, err := asciiName(name)
	if err != nil {
		return fmt.Errorf("question name: %w", err)
	}
	b.questions = append(b.questions, Question{
		Name:          name,
		Type:          qtype,
		Class:         qclass,
		PreferUnicast: preferUnicast,
	})
	b.header.Questions++
	return nil
}

// AddAnswer appends a resource record and increments the header's answer
// count. The record name is always literal-encoded when the message is built.
func (b *Builder) AddAnswer(name string, class domain.RRClass, data rrdata.RData, multicastUnique bool, ttl uint32) error {
	if b.header.Answers == maxSectionEntries {
		return fmt.Errorf("answer section: %w", ErrSectionFull)
	}
	b.answers = append(b.answers, ResourceRecord{
		Name:            dnsname.FromString(name),
		Class:           class,
		TTL:             ttl,
		MulticastUnique: multicastUnique,
		Data:            data,
	})
	b.header.Answers++
	return nil
}

// Build serializes the header followed by every section in insertion order.
// Sections that were never populated contribute nothing beyond their zero
// counts in the header.
func (b *Builder) Build() ([]byte, error) {
	buf := make([]byte, headerSize, 512)
	b.header.marshal(buf)

	for _, q := range b.questions {
		name, err := dnsname.FromString(q.Name).Bytes()
		if err != nil {
			return nil, fmt.Errorf("question %q: %w", q.Name, err)
		}
		buf = append(buf, name...)
		buf = binary.BigEndian.AppendUint16(buf, uint16(q.Type))
		class := uint16(q.Class)
		if q.PreferUnicast {
			class |= classUnicastBit
		}
		buf = binary.BigEndian.AppendUint16(buf, class)
	}

	var err error
	for _, section := range [][]ResourceRecord{b.answers, b.nameservers, b.additional} {
		for _, rr := range section {
			buf, err = appendRecord(buf, rr)
			if err != nil {
				return nil, err
			}
		}
	}

	log.Debug(map[string]any{
		"id":        b.header.ID,
		"questions": b.header.Questions,
		"answers":   b.header.Answers,
		"size":      len(buf),
	}, "Built DNS message")

	return buf, nil
}

// appendRecord serializes one resource record: name, type code, class with
// the cache-flush bit, TTL, RDLENGTH, and the RDATA bytes.
func appendRecord(buf []byte, rr ResourceRecord) ([]byte, error) {
	name, err := rr.Name.Bytes()
	if err != nil {
		return nil, fmt.Errorf("record %q: %w", rr.Name, err)
	}
	rdata, err := rr.Data.Bytes()
	if err != nil {
		return nil, fmt.Errorf("record %q rdata: %w", rr.Name, err)
	}
	if len(rdata) > 65535 {
		return nil, fmt.Errorf("record %q rdata too large: %d bytes", rr.Name, len(rdata))
	}

	buf = append(buf, name...)
	buf = binary.BigEndian.AppendUint16(buf, uint16(rr.Data.TypeCode()))
	class := uint16(rr.Class)
	if rr.MulticastUnique {
		class |= classUnicastBit
	}
	buf = binary.BigEndian.AppendUint16(buf, class)
	buf = binary.BigEndian.AppendUint32(buf, rr.TTL)
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(rdata)))
	return append(buf, rdata...), nil
}

// asciiName returns name unchanged when it is pure ASCII, and its punycode
// form otherwise.
func asciiName(name string) (string, error) {
	for i := 0; i < len(name); i++ {
		if name[i] >= 0x80 {
			return idna.Lookup.ToASCII(name)
		}
	}
	return name, nil
}
