package rrdata

import (
	"github.com/haukened/dns-wire/dnsname"
	"github.com/haukened/dns-wire/domain"
)

// NS is an authoritative name server record (RFC 1035 section 3.3.11).
type NS struct {
	Name dnsname.Name
}

// decodeNS parses NS record data: a single possibly-compressed domain name.
func decodeNS(rdata, original []byte) (RData, error) {
	name, err := dnsname.Scan(rdata, original)
	if err != nil {
		return nil, err
	}
	return NS{Name: name}, nil
}

// TypeCode returns the numeric record type for NS records.
func (NS) TypeCode() domain.RRType {
	return domain.RRTypeNS
}

// Length returns the encoded byte length of the name server name.
func (r NS) Length() uint16 {
	return uint16(r.Name.OctetLength())
}

// Bytes returns the name server name as literal labels.
func (r NS) Bytes() ([]byte, error) {
	return r.Name.Bytes()
}
