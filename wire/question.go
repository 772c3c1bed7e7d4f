package wire

import "github.com/haukened/dns-wire/domain"

// Question is one entry in the question section.
type Question struct {
	Name string
	Type domain.RRType

	// Class is the query class with the unicast-preference bit stripped.
	Class domain.RRClass

	// PreferUnicast asks for a unicast rather than multicast response.
	// Only meaningful under multicast DNS; serialized as bit 15 of the
	// class field.
	PreferUnicast bool
}
