package entropy

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytesDefaultLength(t *testing.T) {
	b := Bytes(nil, 32)
	require.Len(t, b, 32)
}

func TestBytesDefaultNotRepeating(t *testing.T) {
	a := Bytes(nil, 32)
	b := Bytes(nil, 32)
	require.False(t, bytes.Equal(a, b))
}

type fixedSource struct {
	data []byte
}

func (f fixedSource) Read(p []byte) (int, error) {
	n := copy(p, f.data)
	return n, nil
}

func TestBytesUsesSuppliedSource(t *testing.T) {
	source := fixedSource{data: bytes.Repeat([]byte{0x42}, 32)}
	b := Bytes(source, 32)
	require.Equal(t, source.data, b)
}

type failingSource struct{}

func (failingSource) Read(p []byte) (int, error) {
	return 0, errors.New("no entropy available")
}

func TestBytesFallsBackToOSEntropyOnSourceFailure(t *testing.T) {
	b := Bytes(failingSource{}, 32)
	require.Len(t, b, 32)
}

func TestBytesFallsBackOnShortRead(t *testing.T) {
	source := fixedSource{data: []byte{0x01, 0x02}}
	b := Bytes(source, 32)
	require.Len(t, b, 32)
}
