package cbor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Pad  []byte `cbor:"pad"`
	Data []byte `cbor:"data"`
}

func TestRoundTrip(t *testing.T) {
	in := record{Pad: []byte{1, 2}, Data: []byte{3}}
	bts, err := Marshal(in)
	require.NoError(t, err)

	var out record
	require.NoError(t, Unmarshal(bts, &out))
	assert.Equal(t, in, out)
}

func TestDeterministicMapOrder(t *testing.T) {
	a, err := Marshal(map[string]int{"b": 1, "a": 2, "cc": 3})
	require.NoError(t, err)
	b, err := Marshal(map[string]int{"cc": 3, "a": 2, "b": 1})
	require.NoError(t, err)
	assert.Equal(t, a, b)
	// core deterministic order sorts keys bytewise by their encoding
	assert.Equal(t, []byte{0xa3, 0x61, 'a', 0x02, 0x61, 'b', 0x01, 0x62, 'c', 'c', 0x03}, a)
}

func TestRejectsUnknownField(t *testing.T) {
	bts, err := Marshal(map[string][]byte{"pad": {1}, "data": {2}, "extra": {3}})
	require.NoError(t, err)
	var out record
	assert.Error(t, Unmarshal(bts, &out))
}

func TestRejectsDuplicateKey(t *testing.T) {
	// {"pad": h'01', "pad": h'02'}
	bts := []byte{0xa2, 0x63, 'p', 'a', 'd', 0x41, 0x01, 0x63, 'p', 'a', 'd', 0x41, 0x02}
	var out record
	assert.Error(t, Unmarshal(bts, &out))
}
