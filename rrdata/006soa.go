package rrdata

import (
	"encoding/binary"

	"github.com/haukened/dns-wire/dnsname"
	"github.com/haukened/dns-wire/domain"
)

// SOA is a start-of-authority record (RFC 1035 section 3.3.13).
type SOA struct {
	PrimaryNS  dnsname.Name
	Mailbox    dnsname.Name
	Serial     uint32
	Refresh    uint32
	Retry      uint32
	Expire     uint32
	MinimumTTL uint32
}

// decodeSOA parses SOA record data: two possibly-compressed names followed by
// five 32-bit big-endian fields.
func decodeSOA(rdata, original []byte) (RData, error) {
	primary, err := dnsname.Scan(rdata, original)
	if err != nil {
		return nil, err
	}
	offset := primary.ByteLen()
	mailbox, err := dnsname.Scan(rdata[offset:], original)
	if err != nil {
		return nil, err
	}
	offset += mailbox.ByteLen()
	if len(rdata) < offset+20 {
		return nil, ErrWrongRdataLength
	}
	tail := rdata[offset:]
	return SOA{
		PrimaryNS:  primary,
		Mailbox:    mailbox,
		Serial:     binary.BigEndian.Uint32(tail[0:4]),
		Refresh:    binary.BigEndian.Uint32(tail[4:8]),
		Retry:      binary.BigEndian.Uint32(tail[8:12]),
		Expire:     binary.BigEndian.Uint32(tail[12:16]),
		MinimumTTL: binary.BigEndian.Uint32(tail[16:20]),
	}, nil
}

// TypeCode returns the numeric record type for SOA records.
func (SOA) TypeCode() domain.RRType {
	return domain.RRTypeSOA
}

// Length returns the encoded byte length of the record.
func (r SOA) Length() uint16 {
	return uint16(r.PrimaryNS.OctetLength() + r.Mailbox.OctetLength() + 20)
}

// Bytes serializes the record with both names as literal labels.
func (r SOA) Bytes() ([]byte, error) {
	primary, err := r.PrimaryNS.Bytes()
	if err != nil {
		return nil, err
	}
	mailbox, err := r.Mailbox.Bytes()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 0, len(primary)+len(mailbox)+20)
	buf = append(buf, primary...)
	buf = append(buf, mailbox...)
	buf = binary.BigEndian.AppendUint32(buf, r.Serial)
	buf = binary.BigEndian.AppendUint32(buf, r.Refresh)
	buf = binary.BigEndian.AppendUint32(buf, r.Retry)
	buf = binary.BigEndian.AppendUint32(buf, r.Expire)
	buf = binary.BigEndian.AppendUint32(buf, r.MinimumTTL)
	return buf, nil
}
