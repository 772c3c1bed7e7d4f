package rrdata

import (
	"fmt"
	"net"

	"github.com/haukened/dns-wire/domain"
)

// A is an IPv4 host address record (RFC 1035 section 3.4.1).
type A struct {
	Addr net.IP
}

// decodeA parses A record data, which is exactly four address octets.
func decodeA(rdata, _ []byte) (RData, error) {
	if len(rdata) != 4 {
		return nil, ErrWrongRdataLength
	}
	addr := make(net.IP, 4)
	copy(addr, rdata)
	return A{Addr: addr}, nil
}

// TypeCode returns the numeric record type for A records.
func (A) TypeCode() domain.RRType {
	return domain.RRTypeA
}

// Length returns the encoded byte length of the address.
func (A) Length() uint16 {
	return 4
}

// Bytes returns the four big-endian address octets.
func (r A) Bytes() ([]byte, error) {
	v4 := r.Addr.To4()
	if v4 == nil {
		return nil, fmt.Errorf("not an IPv4 address: %s", r.Addr)
	}
	return v4, nil
}
