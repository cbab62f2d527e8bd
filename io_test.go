package isocontour

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c := Build([]Rect{
		{XLo: 1, YLo: 2, XHi: 4, YHi: 6},
		{XLo: 5, YLo: 6, XHi: 12, YHi: 14},
	}, nil)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, c))

	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestEncodeDecodeEmptyContour(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Contour{}))

	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Empty(t, got.Cycles)
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Contour{}))
	raw := buf.Bytes()
	raw[0] ^= 0xff

	_, err := Decode(bytes.NewReader(raw))
	assert.Error(t, err)
}
