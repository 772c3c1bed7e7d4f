package rrdata

import (
	"github.com/haukened/dns-wire/dnsname"
	"github.com/haukened/dns-wire/domain"
)

// PTR is a domain name pointer record (RFC 1035 section 3.3.12).
type PTR struct {
	Name dnsname.Name
}

// decodePTR parses PTR record data: a single possibly-compressed domain name.
func decodePTR(rdata, original []byte) (RData, error) {
	name, err := dnsname.Scan(rdata, original)
	if err != nil {
		return nil, err
	}
	return PTR{Name: name}, nil
}

// TypeCode returns the numeric record type for PTR records.
func (PTR) TypeCode() domain.RRType {
	return domain.RRTypePTR
}

// Length returns the encoded byte length of the target name.
func (r PTR) Length() uint16 {
	return uint16(r.Name.OctetLength())
}

// Bytes returns the target name as literal labels.
func (r PTR) Bytes() ([]byte, error) {
	return r.Name.Bytes()
}
