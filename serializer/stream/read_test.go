package stream_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/fixedbytes/serializer"
	"github.com/iotaledger/hive.go/fixedbytes/serializer/stream"
)

func TestRead(t *testing.T) {
	buffer := bytes.NewReader([]byte{42, 0, 0, 0, 0, 0, 0, 0})

	result, err := stream.Read[serializer.Uint64](buffer)

	require.NoError(t, err)
	require.EqualValues(t, 42, result)
}

func TestRead_NotEnoughData(t *testing.T) {
	buffer := bytes.NewReader([]byte{42, 0, 0})

	_, err := stream.Read[serializer.Uint64](buffer)
	require.ErrorIs(t, err, serializer.ErrBadLength)

	var seriErr serializer.Error
	require.ErrorAs(t, err, &seriErr)
	require.Equal(t, serializer.NewBadLength(3, 8), seriErr)
}

func TestReadBytes(t *testing.T) {
	initialBytes := []byte{1, 2, 3, 4, 5}
	buffer := bytes.NewReader(initialBytes)

	readBytes, err := stream.ReadBytes(buffer, 5)
	require.NoError(t, err)
	require.EqualValues(t, initialBytes, readBytes)
}

func TestByteReader(t *testing.T) {
	reader := stream.NewByteReader([]byte{0x01, 0x02, 0x03})

	_, err := serializer.FromSource[serializer.Uint32, serializer.Error](reader)
	require.Equal(t, serializer.NewBadLength(3, 4), err)
	require.Zero(t, reader.BytesRead())

	value, err := serializer.FromSource[serializer.Uint16, serializer.Error](reader)
	require.NoError(t, err)
	require.EqualValues(t, 0x0201, value)
	require.Equal(t, 2, reader.BytesRead())
	require.Equal(t, 1, reader.Remaining())
}
