package rrdata

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func segments(r TXT) [][]byte {
	var out [][]byte
	for seg := range r.Segments() {
		out = append(out, seg)
	}
	return out
}

func TestTXTFromString(t *testing.T) {
	record := TXTFromString("this is a test")
	wire, err := record.Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte("\x0Ethis is a test"), wire)
}

func TestTXTFromString_SplitsAt255Bytes(t *testing.T) {
	long := strings.Repeat("x", 300)
	record := TXTFromString(long)

	wire, err := record.Bytes()
	require.NoError(t, err)
	require.Equal(t, 302, len(wire)) // 300 content bytes + 2 length prefixes
	require.Equal(t, byte(255), wire[0])
	require.Equal(t, byte(45), wire[256])
	require.Equal(t, uint16(len(wire)), record.Length())

	// Decoding recovers exactly the same two boundaries.
	rd, err := Decode(16, wire, nil)
	require.NoError(t, err)
	segs := segments(rd.(TXT))
	require.Len(t, segs, 2)
	require.Equal(t, []byte(strings.Repeat("x", 255)), segs[0])
	require.Equal(t, []byte(strings.Repeat("x", 45)), segs[1])
}

func TestDecodeTXT_SegmentBoundariesPreserved(t *testing.T) {
	wire := []byte("\x03foo\x00\x04barb")
	rd, err := Decode(16, wire, nil)
	require.NoError(t, err)

	record := rd.(TXT)
	segs := segments(record)
	require.Equal(t, [][]byte{[]byte("foo"), {}, []byte("barb")}, segs)

	// Restartable: a second pass yields the same sequence.
	require.Equal(t, segs, segments(record))

	out, err := record.Bytes()
	require.NoError(t, err)
	require.True(t, bytes.Equal(wire, out))
}

func TestDecodeTXT_Errors(t *testing.T) {
	cases := []struct {
		name  string
		rdata []byte
	}{
		{"empty payload", []byte{}},
		{"declared length overruns buffer", []byte{5, 'a', 'b'}},
		{"second segment overruns buffer", []byte{1, 'a', 9, 'b'}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(16, tc.rdata, nil)
			require.ErrorIs(t, err, ErrWrongRdataLength)
		})
	}
}

func TestDecodeTXT_OpaqueBytes(t *testing.T) {
	// Segment content is not required to be UTF-8.
	wire := []byte{2, 0xff, 0xfe}
	rd, err := Decode(16, wire, nil)
	require.NoError(t, err)
	require.Equal(t, [][]byte{{0xff, 0xfe}}, segments(rd.(TXT)))
}
