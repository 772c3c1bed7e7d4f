package rrdata

import (
	"github.com/haukened/dns-wire/dnsname"
	"github.com/haukened/dns-wire/domain"
)

// CNAME is a canonical name record (RFC 1035 section 3.3.1).
type CNAME struct {
	Name dnsname.Name
}

// decodeCNAME parses CNAME record data: a single possibly-compressed domain name.
func decodeCNAME(rdata, original []byte) (RData, error) {
	name, err := dnsname.Scan(rdata, original)
	if err != nil {
		return nil, err
	}
	return CNAME{Name: name}, nil
}

// TypeCode returns the numeric record type for CNAME records.
func (CNAME) TypeCode() domain.RRType {
	return domain.RRTypeCNAME
}

// Length returns the encoded byte length of the canonical name.
func (r CNAME) Length() uint16 {
	return uint16(r.Name.OctetLength())
}

// Bytes returns the canonical name as literal labels.
func (r CNAME) Bytes() ([]byte, error) {
	return r.Name.Bytes()
}
