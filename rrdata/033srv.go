package rrdata

import (
	"encoding/binary"

	"github.com/haukened/dns-wire/dnsname"
	"github.com/haukened/dns-wire/domain"
)

// SRV is a service locator record (RFC 2782).
type SRV struct {
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   dnsname.Name
}

// decodeSRV parses SRV record data: priority, weight, and port as 16-bit
// fields followed by a possibly-compressed target name.
func decodeSRV(rdata, original []byte) (RData, error) {
	if len(rdata) < 6 {
		return nil, ErrWrongRdataLength
	}
	target, err := dnsname.Scan(rdata[6:], original)
	if err != nil {
		return nil, err
	}
	return SRV{
		Priority: binary.BigEndian.Uint16(rdata[0:2]),
		Weight:   binary.BigEndian.Uint16(rdata[2:4]),
		Port:     binary.BigEndian.Uint16(rdata[4:6]),
		Target:   target,
	}, nil
}

// TypeCode returns the numeric record type for SRV records.
func (SRV) TypeCode() domain.RRType {
	return domain.RRTypeSRV
}

// Length returns the encoded byte length of the record.
func (r SRV) Length() uint16 {
	return uint16(6 + r.Target.OctetLength())
}

// Bytes serializes the three 16-bit fields and the target as literal labels.
func (r SRV) Bytes() ([]byte, error) {
	target, err := r.Target.Bytes()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 0, 6+len(target))
	buf = binary.BigEndian.AppendUint16(buf, r.Priority)
	buf = binary.BigEndian.AppendUint16(buf, r.Weight)
	buf = binary.BigEndian.AppendUint16(buf, r.Port)
	return append(buf, target...), nil
}
