package rrdata

import "github.com/haukened/dns-wire/domain"

// decoders is the static dispatch table mapping record type codes to their
// decoders. Adding a record kind means adding a concrete type and an entry
// here; dispatch is fixed at compile time.
var decoders = map[domain.RRType]decodeFunc{
	domain.RRTypeA:     decodeA,
	domain.RRTypeNS:    decodeNS,
	domain.RRTypeCNAME: decodeCNAME,
	domain.RRTypeSOA:   decodeSOA,
	domain.RRTypePTR:   decodePTR,
	domain.RRTypeMX:    decodeMX,
	domain.RRTypeTXT:   decodeTXT,
	domain.RRTypeAAAA:  decodeAAAA,
	domain.RRTypeSRV:   decodeSRV,
	domain.RRTypeNSEC:  decodeNSEC,
}

// Decode parses record data based on its numeric type code.
//
// original is the full message buffer, so name-bearing kinds can follow
// compression pointers anywhere in the message. Type codes without a
// registered decoder are never an error: they decode to an Unknown value
// holding the code and the verbatim payload bytes.
func Decode(rrType domain.RRType, rdata, original []byte) (RData, error) {
	if decode, ok := decoders[rrType]; ok {
		return decode(rdata, original)
	}
	data := make([]byte, len(rdata))
	copy(data, rdata)
	return Unknown{Code: rrType, Data: data}, nil
}

// Unknown holds the payload of a record type this package has no codec for.
// The raw bytes pass through decode and encode unchanged, so unsupported
// record types are preserved rather than rejected.
type Unknown struct {
	Code domain.RRType
	Data []byte
}

// TypeCode returns the original numeric record type.
func (u Unknown) TypeCode() domain.RRType {
	return u.Code
}

// Length returns the payload length in bytes.
func (u Unknown) Length() uint16 {
	return uint16(len(u.Data))
}

// Bytes returns the payload verbatim.
func (u Unknown) Bytes() ([]byte, error) {
	return u.Data, nil
}
