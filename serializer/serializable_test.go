package serializer_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/fixedbytes/serializer"
)

// Beef only accepts the wire unit 0xbeef.
type Beef struct{}

func (Beef) Size() int { return 2 }

func (Beef) PutBytes(buf []byte) {
	buf[0], buf[1] = 0xbe, 0xef
}

func (*Beef) SetBytes(buf []byte) error {
	if buf[0] != 0xbe || buf[1] != 0xef {
		return ErrBeefInvalidBytes
	}

	return nil
}

// BeefError is a caller defined error type that collapses every length failure.
type BeefError struct {
	kind string
}

var (
	ErrBeefInvalidBytes  = BeefError{kind: "invalid bytes"}
	ErrBeefUnexpectedEOF = BeefError{kind: "unexpected eof"}
)

func (e BeefError) Error() string { return e.kind }

func (BeefError) BadLength(int, int) BeefError { return ErrBeefUnexpectedEOF }

// Range is a composite of two Uint32 with Start <= End.
type Range struct {
	Start serializer.Uint32
	End   serializer.Uint32
}

func (Range) Size() int { return 2 * serializer.UInt32ByteSize }

func (r Range) PutBytes(buf []byte) {
	r.Start.PutBytes(buf[:serializer.UInt32ByteSize])
	r.End.PutBytes(buf[serializer.UInt32ByteSize:])
}

func (r *Range) SetBytes(buf []byte) error {
	_ = r.Start.SetBytes(buf[:serializer.UInt32ByteSize])
	_ = r.End.SetBytes(buf[serializer.UInt32ByteSize:])
	if r.Start > r.End {
		return serializer.NewInvalidData()
	}

	return nil
}

func TestSizeOf(t *testing.T) {
	require.Equal(t, 2, serializer.SizeOf[Beef]())
	require.Equal(t, 8, serializer.SizeOf[Range]())
	require.Equal(t, 32, serializer.SizeOf[serializer.Uint256]())
}

func TestFromBytes(t *testing.T) {
	_, err := serializer.FromBytes[Beef]([]byte{0xbe, 0xef})
	require.NoError(t, err)

	_, err = serializer.FromBytes[Beef]([]byte{0x00, 0x01})
	require.ErrorIs(t, err, ErrBeefInvalidBytes)

	require.Panics(t, func() {
		_, _ = serializer.FromBytes[Beef]([]byte{0xbe})
	})
}

func TestFromSlice(t *testing.T) {
	t.Run("buffer too small", func(t *testing.T) {
		_, err := serializer.FromSlice[Beef, BeefError]([]byte{0x00})
		require.ErrorIs(t, err, ErrBeefUnexpectedEOF)
	})

	t.Run("bigger buffer", func(t *testing.T) {
		buf := []byte{0xbe, 0xef, 0x10, 0x20}
		_, err := serializer.FromSlice[Beef, BeefError](buf)
		require.NoError(t, err)
		require.Equal(t, []byte{0xbe, 0xef, 0x10, 0x20}, buf)
	})

	t.Run("invalid data", func(t *testing.T) {
		_, err := serializer.FromSlice[Range, serializer.Error]([]byte{2, 0, 0, 0, 1, 0, 0, 0})
		require.ErrorIs(t, err, serializer.ErrInvalidData)
	})

	t.Run("valid composite", func(t *testing.T) {
		r, err := serializer.FromSlice[Range, serializer.Error]([]byte{1, 0, 0, 0, 2, 0, 0, 0, 0xff})
		require.NoError(t, err)
		require.Equal(t, Range{Start: 1, End: 2}, r)
	})
}

func TestFromSlice_BadLength(t *testing.T) {
	tests := []struct {
		name     string
		decode   func([]byte) error
		input    []byte
		expected int
	}{
		{"uint8", decodeWith[serializer.Uint8], []byte{}, 1},
		{"uint16", decodeWith[serializer.Uint16], []byte{0x01}, 2},
		{"uint32", decodeWith[serializer.Uint32], []byte{0x01, 0x02}, 4},
		{"uint64", decodeWith[serializer.Uint64], []byte{}, 8},
		{"uint128", decodeWith[serializer.Uint128], []byte{0x01, 0x02, 0x03}, 16},
		{"uint256", decodeWith[serializer.Uint256], make([]byte, 31), 32},
		{"int8", decodeWith[serializer.Int8], []byte{}, 1},
		{"int16", decodeWith[serializer.Int16], []byte{0xff}, 2},
		{"int32", decodeWith[serializer.Int32], []byte{0xff, 0xe4}, 4},
		{"int64", decodeWith[serializer.Int64], []byte{0xff, 0xf4}, 8},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.decode(test.input)
			require.Equal(t, serializer.NewBadLength(len(test.input), test.expected), err)
		})
	}
}

func decodeWith[V any, P serializer.SerializablePtr[V]](buf []byte) error {
	_, err := serializer.FromSlice[V, serializer.Error, P](buf)

	return err
}

func TestToBytes(t *testing.T) {
	require.Equal(t, []byte{0xbe, 0xef}, serializer.ToBytes(Beef{}))
	require.Equal(t, []byte{1, 0, 0, 0, 2, 0, 0, 0}, serializer.ToBytes(Range{Start: 1, End: 2}))
}

func TestPutInto(t *testing.T) {
	var buf [2]byte
	serializer.PutInto(serializer.Uint16(0x0102), buf[:])
	require.Equal(t, [2]byte{0x02, 0x01}, buf)

	require.Panics(t, func() {
		serializer.PutInto(serializer.Uint16(0x0102), make([]byte, 3))
	})
}

func TestErrorStrings(t *testing.T) {
	require.Equal(t, "invalid data", serializer.NewInvalidData().Error())
	require.Equal(t, "bad length: found 1, expected 2", serializer.NewBadLength(1, 2).Error())
	require.Equal(t, "invalid char: 'q' at index 2", serializer.NewInvalidChar('q', 2).Error())
	require.Equal(t, "BadLength", serializer.KindBadLength.String())
	require.Equal(t, "Kind(9)", fmt.Sprint(serializer.Kind(9)))
}

func TestErrorIs(t *testing.T) {
	err := error(serializer.NewBadLength(0, 2))
	require.ErrorIs(t, err, serializer.ErrBadLength)
	require.NotErrorIs(t, err, serializer.ErrInvalidChar)
	require.NotErrorIs(t, err, serializer.ErrInvalidData)

	require.ErrorIs(t, serializer.NewInvalidChar('x', 0), serializer.ErrInvalidChar)
	require.ErrorIs(t, serializer.NewInvalidData(), serializer.ErrInvalidData)
}

func TestFromSource_NoPartialConsumption(t *testing.T) {
	src := &countingSource{data: []byte{0xbe, 0xef, 0x10}}

	_, err := serializer.FromSource[Beef, BeefError](src)
	require.NoError(t, err)
	require.Equal(t, []byte{0x10}, src.data)

	_, err = serializer.FromSource[Beef, BeefError](src)
	require.ErrorIs(t, err, ErrBeefUnexpectedEOF)
	require.Equal(t, []byte{0x10}, src.data)
	require.Equal(t, 1, src.reads)
}

func TestFromSource_InvalidDataConsumes(t *testing.T) {
	src := &countingSource{data: []byte{0xbe, 0xef, 0x10, 0x20}}

	_, err := serializer.FromSource[Beef, BeefError](src)
	require.NoError(t, err)

	_, err = serializer.FromSource[Beef, BeefError](src)
	require.ErrorIs(t, err, ErrBeefInvalidBytes)
	require.Empty(t, src.data)
}

// countingSource is a Source without the zero copy fast path.
type countingSource struct {
	data  []byte
	reads int
}

func (c *countingSource) Remaining() int { return len(c.data) }

func (c *countingSource) ReadExact(buf []byte) (int, error) {
	if len(buf) > len(c.data) {
		return 0, serializer.NewBadLength(len(c.data), len(buf))
	}
	c.reads++
	n := copy(buf, c.data)
	c.data = c.data[n:]

	return n, nil
}

// Secret wipes its wire unit once decoded.
type Secret [2]byte

func (Secret) Size() int { return 2 }

func (s Secret) PutBytes(buf []byte) { copy(buf, s[:]) }

func (s *Secret) SetBytes(buf []byte) error {
	copy(s[:], buf)
	clear(buf)

	return nil
}

func TestDecodersPassCopies(t *testing.T) {
	buf := []byte{0xaa, 0xbb, 0xcc}

	secret, err := serializer.FromSlice[Secret, serializer.Error](buf)
	require.NoError(t, err)
	require.Equal(t, Secret{0xaa, 0xbb}, secret)
	require.Equal(t, []byte{0xaa, 0xbb, 0xcc}, buf)

	secret, err = serializer.FromBytes[Secret](buf[:2])
	require.NoError(t, err)
	require.Equal(t, Secret{0xaa, 0xbb}, secret)
	require.Equal(t, []byte{0xaa, 0xbb, 0xcc}, buf)
}
