package wire

import (
	"net"
	"strings"
	"testing"

	"github.com/haukened/dns-wire/domain"
	"github.com/haukened/dns-wire/rrdata"
	"github.com/stretchr/testify/require"
)

func TestBuild_Query(t *testing.T) {
	b := NewBuilder(1573, true)
	require.NoError(t, b.AddQuestion("example.com", false, domain.RRTypeA, domain.RRClassIN))

	want := []byte("\x06\x25\x01\x00\x00\x01\x00\x00\x00\x00\x00\x00" +
		"\x07example\x03com\x00\x00\x01\x00\x01")
	got, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestBuild_UnicastQuery(t *testing.T) {
	// The unicast-preference flag sets the high bit of the class field.
	b := NewBuilder(1573, true)
	require.NoError(t, b.AddQuestion("example.com", true, domain.RRTypeA, domain.RRClassIN))

	want := []byte("\x06\x25\x01\x00\x00\x01\x00\x00\x00\x00\x00\x00" +
		"\x07example\x03com\x00\x00\x01\x80\x01")
	got, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestBuild_SRVQuery(t *testing.T) {
	b := NewBuilder(23513, true)
	require.NoError(t, b.AddQuestion("_xmpp-server._tcp.gmail.com", false, domain.RRTypeSRV, domain.RRClassIN))

	want := []byte("\x5b\xd9\x01\x00\x00\x01\x00\x00\x00\x00\x00\x00" +
		"\x0c_xmpp-server\x04_tcp\x05gmail\x03com\x00\x00\x21\x00\x01")
	got, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestBuild_NoRecursion(t *testing.T) {
	b := NewBuilder(1, false)
	require.NoError(t, b.AddQuestion("example.com", false, domain.RRTypeA, domain.RRClassIN))

	got, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, byte(0x00), got[2]) // recursion-desired bit clear
}

func TestBuild_AnswerRoundTrip(t *testing.T) {
	b := NewBuilder(42, false)
	require.NoError(t, b.AddQuestion("example.com", false, domain.RRTypeA, domain.RRClassIN))

	a, err := rrdata.Decode(domain.RRTypeA, []byte{192, 0, 2, 1}, nil)
	require.NoError(t, err)
	require.NoError(t, b.AddAnswer("example.com", domain.RRClassIN, a, false, 300))

	raw, err := b.Build()
	require.NoError(t, err)

	msg, err := Parse(raw)
	require.NoError(t, err)
	require.Equal(t, uint16(42), msg.Header.ID)
	require.Len(t, msg.Answers, 1)

	rr := msg.Answers[0]
	require.Equal(t, "example.com", rr.Name.String())
	require.Equal(t, domain.RRClassIN, rr.Class)
	require.Equal(t, uint32(300), rr.TTL)
	require.False(t, rr.MulticastUnique)
	require.True(t, rr.Data.(rrdata.A).Addr.Equal(net.IPv4(192, 0, 2, 1)))
}

func TestBuild_MulticastUniqueAnswer(t *testing.T) {
	// The cache-flush bit survives a build/parse round trip.
	b := NewBuilder(7, false)
	a, err := rrdata.Decode(domain.RRTypeA, []byte{10, 0, 0, 1}, nil)
	require.NoError(t, err)
	require.NoError(t, b.AddAnswer("printer.local", domain.RRClassIN, a, true, 120))

	raw, err := b.Build()
	require.NoError(t, err)

	msg, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, msg.Answers, 1)
	require.True(t, msg.Answers[0].MulticastUnique)
	require.Equal(t, domain.RRClassIN, msg.Answers[0].Class)
}

func TestBuild_UnknownRDataPassthrough(t *testing.T) {
	payload := []byte{1, 2, 3, 4, 5}
	rd, err := rrdata.Decode(domain.RRType(4711), payload, nil)
	require.NoError(t, err)

	b := NewBuilder(9, false)
	require.NoError(t, b.AddAnswer("example.com", domain.RRClassIN, rd, false, 60))

	raw, err := b.Build()
	require.NoError(t, err)

	msg, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, msg.Answers, 1)

	u, ok := msg.Answers[0].Data.(rrdata.Unknown)
	require.True(t, ok)
	require.Equal(t, domain.RRType(4711), u.TypeCode())
	require.Equal(t, payload, u.Data)
}

func TestBuild_LabelTooLongIsRecoverable(t *testing.T) {
	b := NewBuilder(1, true)
	long := strings.Repeat("a", 63)
	require.NoError(t, b.AddQuestion(long+".com", false, domain.RRTypeA, domain.RRClassIN))

	_, err := b.Build()
	require.Error(t, err)
}

func TestAddQuestion_IDNA(t *testing.T) {
	b := NewBuilder(1, true)
	require.NoError(t, b.AddQuestion("bücher.example", false, domain.RRTypeA, domain.RRClassIN))
	require.Equal(t, "xn--bcher-kva.example", b.questions[0].Name)

	err := b.AddQuestion("bad name.example", false, domain.RRTypeA, domain.RRClassIN)
	require.Error(t, err)
	require.Len(t, b.questions, 1)
}

func TestBuild_EmptyMessage(t *testing.T) {
	got, err := NewBuilder(0, false).Build()
	require.NoError(t, err)
	require.Len(t, got, headerSize)
}
