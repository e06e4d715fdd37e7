package stream_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/fixedbytes/serializer"
	"github.com/iotaledger/hive.go/fixedbytes/serializer/stream"
)

func TestSliceSource_ReadExact(t *testing.T) {
	src := stream.SliceSource([]byte{1, 2, 3})

	buf := make([]byte, 2)
	n, err := src.ReadExact(buf)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, []byte{1, 2}, buf)
	require.Equal(t, 1, src.Remaining())

	n, err = src.ReadExact(buf)
	require.Equal(t, 0, n)
	require.Equal(t, serializer.NewBadLength(1, 2), err)
	require.Equal(t, 1, src.Remaining(), "a failed read must not consume")
}

func TestSliceSource_ConsecutiveValues(t *testing.T) {
	src := stream.SliceSource([]byte{0x02, 0x01, 0x04, 0x03})

	first, err := serializer.FromSource[serializer.Uint16, serializer.Error](&src)
	require.NoError(t, err)
	require.EqualValues(t, 0x0102, first)

	second, err := serializer.FromSource[serializer.Uint16, serializer.Error](&src)
	require.NoError(t, err)
	require.EqualValues(t, 0x0304, second)
	require.Zero(t, src.Remaining())

	_, err = serializer.FromSource[serializer.Uint16, serializer.Error](&src)
	require.Equal(t, serializer.NewBadLength(0, 2), err)
}

// wiping clears the bytes it was decoded from.
type wiping byte

func (wiping) Size() int { return 1 }

func (w wiping) PutBytes(buf []byte) { buf[0] = byte(w) }

func (w *wiping) SetBytes(buf []byte) error {
	*w = wiping(buf[0])
	buf[0] = 0

	return nil
}

func TestSliceSource_FromSourceLeavesDataIntact(t *testing.T) {
	data := []byte{0x7f, 0x80}
	src := stream.SliceSource(data)

	value, err := serializer.FromSource[wiping, serializer.Error](&src)
	require.NoError(t, err)
	require.EqualValues(t, 0x7f, value)
	require.Equal(t, []byte{0x7f, 0x80}, data)
	require.Equal(t, 1, src.Remaining())
}

func TestSliceSource_Next(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	src := stream.SliceSource(data)

	next, err := src.Next(3)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, next)

	// the returned view is capped so appending cannot clobber the rest of the source
	require.Len(t, append(next, 9), 4)
	require.Equal(t, []byte{4}, []byte(src))
	require.Equal(t, byte(4), data[3])
}

func TestSliceSink_WriteExact(t *testing.T) {
	buffer := make([]byte, 5)
	sink := stream.SliceSink(buffer)

	_, err := sink.WriteExact([]byte{0xbe, 0xef})
	require.NoError(t, err)
	_, err = sink.WriteExact([]byte{0xbe, 0xef})
	require.NoError(t, err)

	require.Equal(t, 1, sink.Remaining())
	require.Equal(t, []byte{0xbe, 0xef, 0xbe, 0xef, 0x00}, buffer)

	_, err = sink.WriteExact([]byte{0xbe, 0xef})
	require.Equal(t, serializer.NewBadLength(1, 2), err)
	require.Equal(t, 1, sink.Remaining())
	require.Equal(t, []byte{0xbe, 0xef, 0xbe, 0xef, 0x00}, buffer)
}

func TestSliceSink_WriteTo(t *testing.T) {
	buffer := make([]byte, 7)
	sink := stream.SliceSink(buffer)

	require.NoError(t, serializer.WriteTo[serializer.Error](&sink, serializer.Uint32(0x01020304)))
	require.NoError(t, serializer.WriteTo[serializer.Error](&sink, serializer.Int16(-2)))

	err := serializer.WriteTo[serializer.Error](&sink, serializer.Uint16(7))
	require.ErrorIs(t, err, serializer.ErrBadLength)
	require.Equal(t, serializer.NewBadLength(1, 2), err)

	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01, 0xfe, 0xff, 0x00}, buffer)
}

func TestSliceRoundTrip(t *testing.T) {
	values := []serializer.Serializable{
		serializer.Uint8(0xaa),
		serializer.Int32(-12345678),
		serializer.Uint64(0x0102030405060708),
	}

	buffer := make([]byte, 13)
	sink := stream.SliceSink(buffer)
	require.NoError(t, stream.WriteAll[serializer.Error](&sink, values...))
	require.Zero(t, sink.Remaining())

	src := stream.SliceSource(buffer)
	u8, err := serializer.FromSource[serializer.Uint8, serializer.Error](&src)
	require.NoError(t, err)
	i32, err := serializer.FromSource[serializer.Int32, serializer.Error](&src)
	require.NoError(t, err)
	u64, err := serializer.FromSource[serializer.Uint64, serializer.Error](&src)
	require.NoError(t, err)

	require.Equal(t, values, []serializer.Serializable{u8, i32, u64})
}
