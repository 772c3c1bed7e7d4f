package wire

import (
	"github.com/haukened/dns-wire/dnsname"
	"github.com/haukened/dns-wire/domain"
	"github.com/haukened/dns-wire/rrdata"
)

// ResourceRecord is one entry in the answer, authority, or additional section.
type ResourceRecord struct {
	Name dnsname.Name

	// Class is the record class with the cache-flush bit stripped.
	Class domain.RRClass

	// TTL is the record lifetime in seconds.
	TTL uint32

	// MulticastUnique is the multicast DNS cache-flush bit, carried as
	// bit 15 of the class field on the wire.
	MulticastUnique bool

	// Data is the decoded RDATA payload.
	Data rrdata.RData
}
