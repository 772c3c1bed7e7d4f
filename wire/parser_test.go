package wire

import (
	"testing"

	"github.com/haukened/dns-wire/dnsname"
	"github.com/haukened/dns-wire/domain"
	"github.com/haukened/dns-wire/rrdata"
	"github.com/stretchr/testify/require"
)

// A captured TXT response for facebook.com with a compressed answer name and
// a two-segment TXT payload.
var txtResponse = []byte("\x06\x25\x81\x80\x00\x01\x00\x01\x00\x00\x00\x00" +
	"\x08facebook\x03com\x00\x00\x10\x00\x01" +
	"\xc0\x0c\x00\x10\x00\x01\x00\x01\x51\x3d\x00\x23" +
	"\x15v=spf1 redirect=_spf." +
	"\x0cfacebook.com")

func TestParse_TXTResponse(t *testing.T) {
	msg, err := Parse(txtResponse)
	require.NoError(t, err)

	h := msg.Header
	require.Equal(t, uint16(1573), h.ID)
	require.False(t, h.Query)
	require.Equal(t, domain.OpcodeQuery, h.Opcode)
	require.True(t, h.RecursionDesired)
	require.True(t, h.RecursionAvailable)
	require.False(t, h.Authoritative)
	require.False(t, h.Truncated)
	require.Equal(t, domain.RCodeNoError, h.ResponseCode)

	require.Len(t, msg.Questions, 1)
	q := msg.Questions[0]
	require.Equal(t, "facebook.com", q.Name)
	require.Equal(t, domain.RRTypeTXT, q.Type)
	require.Equal(t, domain.RRClassIN, q.Class)
	require.False(t, q.PreferUnicast)

	require.Len(t, msg.Answers, 1)
	rr := msg.Answers[0]
	require.Equal(t, "facebook.com", rr.Name.String())
	require.Equal(t, domain.RRClassIN, rr.Class)
	require.Equal(t, uint32(86333), rr.TTL)
	require.False(t, rr.MulticastUnique)

	txt, ok := rr.Data.(rrdata.TXT)
	require.True(t, ok)

	var segs [][]byte
	var all []byte
	for seg := range txt.Segments() {
		segs = append(segs, seg)
		all = append(all, seg...)
	}
	require.Equal(t, "v=spf1 redirect=_spf.facebook.com", string(all))
	// Segment boundaries are preserved, not just the concatenation.
	require.Equal(t, [][]byte{[]byte("v=spf1 redirect=_spf."), []byte("facebook.com")}, segs)
}

func TestParse_HeaderTooShort(t *testing.T) {
	_, err := Parse([]byte{0, 1, 2})
	require.ErrorIs(t, err, dnsname.ErrUnexpectedEOF)
}

func TestParse_TruncatedQuestion(t *testing.T) {
	raw := []byte("\x00\x01\x00\x00\x00\x01\x00\x00\x00\x00\x00\x00" +
		"\x07example\x03com\x00\x00\x01") // class cut off
	_, err := Parse(raw)
	require.ErrorIs(t, err, dnsname.ErrUnexpectedEOF)
}

func TestParse_TruncatedRdata(t *testing.T) {
	raw := []byte("\x00\x01\x00\x00\x00\x00\x00\x01\x00\x00\x00\x00" +
		"\x07example\x03com\x00\x00\x01\x00\x01\x00\x00\x01\x2c\x00\x04\xc0\x00") // 2 of 4 rdata bytes
	_, err := Parse(raw)
	require.ErrorIs(t, err, dnsname.ErrUnexpectedEOF)
}

func TestParse_BadRdataLength(t *testing.T) {
	// RDLENGTH says 3 bytes for an A record, which the A decoder rejects.
	raw := []byte("\x00\x01\x00\x00\x00\x00\x00\x01\x00\x00\x00\x00" +
		"\x07example\x03com\x00\x00\x01\x00\x01\x00\x00\x01\x2c\x00\x03\xc0\x00\x02")
	_, err := Parse(raw)
	require.ErrorIs(t, err, rrdata.ErrWrongRdataLength)
}

func TestParse_BadPointerAborts(t *testing.T) {
	// The answer name points at itself.
	raw := []byte("\x00\x01\x00\x00\x00\x00\x00\x01\x00\x00\x00\x00" +
		"\xc0\x0c\x00\x01\x00\x01\x00\x00\x00\x3c\x00\x04\x0a\x00\x00\x01")
	_, err := Parse(raw)
	require.ErrorIs(t, err, dnsname.ErrBadPointer)
}

func TestParse_UnicastPreferenceBit(t *testing.T) {
	raw := []byte("\x00\x07\x00\x00\x00\x01\x00\x00\x00\x00\x00\x00" +
		"\x07printer\x05local\x00\x00\x01\x80\x01")
	msg, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, msg.Questions, 1)
	require.True(t, msg.Questions[0].PreferUnicast)
	require.Equal(t, domain.RRClassIN, msg.Questions[0].Class)
}

func TestHeader_MarshalParseRoundTrip(t *testing.T) {
	cases := []Header{
		{ID: 1, Query: true, Opcode: domain.OpcodeQuery, RecursionDesired: true, Questions: 1},
		{ID: 65535, Query: false, Opcode: domain.OpcodeStatus, Authoritative: true, Truncated: true,
			RecursionAvailable: true, AuthenticatedData: true, CheckingDisabled: true,
			ResponseCode: domain.RCodeNXDomain, Answers: 3, Nameservers: 2, Additional: 1},
		{ID: 0, Query: false, Opcode: domain.OpcodeUpdate, ResponseCode: domain.RCodeRefused},
	}
	for _, h := range cases {
		buf := make([]byte, headerSize)
		h.marshal(buf)
		got, err := parseHeader(buf)
		require.NoError(t, err)
		require.Equal(t, h, got)
	}
}
