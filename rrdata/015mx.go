package rrdata

import (
	"encoding/binary"

	"github.com/haukened/dns-wire/dnsname"
	"github.com/haukened/dns-wire/domain"
)

// MX is a mail exchange record (RFC 1035 section 3.3.9).
type MX struct {
	Preference uint16
	Exchange   dnsname.Name
}

// decodeMX parses MX record data: a 16-bit preference followed by a
// possibly-compressed exchange name.
func decodeMX(rdata, original []byte) (RData, error) {
	if len(rdata) < 2 {
		return nil, ErrWrongRdataLength
	}
	exchange, err := dnsname.Scan(rdata[2:], original)
	if err != nil {
		return nil, err
	}
	return MX{
		Preference: binary.BigEndian.Uint16(rdata[0:2]),
		Exchange:   exchange,
	}, nil
}

// TypeCode returns the numeric record type for MX records.
func (MX) TypeCode() domain.RRType {
	return domain.RRTypeMX
}

// Length returns the encoded byte length of the record.
func (r MX) Length() uint16 {
	return uint16(2 + r.Exchange.OctetLength())
}

// Bytes serializes the preference and the exchange name as literal labels.
func (r MX) Bytes() ([]byte, error) {
	exchange, err := r.Exchange.Bytes()
	if err != nil {
		return nil, err
	}
	buf := binary.BigEndian.AppendUint16(make([]byte, 0, 2+len(exchange)), r.Preference)
	return append(buf, exchange...), nil
}
