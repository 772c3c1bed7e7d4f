package rrdata

import (
	"fmt"
	"net"

	"github.com/haukened/dns-wire/domain"
)

// AAAA is an IPv6 host address record (RFC 3596).
type AAAA struct {
	Addr net.IP
}

// decodeAAAA parses AAAA record data, which is exactly sixteen address octets.
func decodeAAAA(rdata, _ []byte) (RData, error) {
	if len(rdata) != 16 {
		return nil, ErrWrongRdataLength
	}
	addr := make(net.IP, 16)
	copy(addr, rdata)
	return AAAA{Addr: addr}, nil
}

// TypeCode returns the numeric record type for AAAA records.
func (AAAA) TypeCode() domain.RRType {
	return domain.RRTypeAAAA
}

// Length returns the encoded byte length of the address.
func (AAAA) Length() uint16 {
	return 16
}

// Bytes returns the sixteen big-endian address octets.
func (r AAAA) Bytes() ([]byte, error) {
	v6 := r.Addr.To16()
	if v6 == nil {
		return nil, fmt.Errorf("not an IPv6 address: %s", r.Addr)
	}
	return v6, nil
}
