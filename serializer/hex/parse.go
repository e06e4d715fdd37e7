package hex

import (
	"github.com/iotaledger/hive.go/fixedbytes/serializer"
)

// FromHexStr parses the first 2*SizeOf[V]() characters of s as hex digits and
// decodes the resulting wire unit into a V. There is no prefix; trailing
// characters are ignored.
//
// If s is too short it fails with E.BadLength(len(s), 2*size). The first byte
// outside of [0-9a-fA-F] fails with E.InvalidChar(byte, index); of a pair the
// high nibble is checked first.
func FromHexStr[V any, E serializer.HexErrorProducer[E], P serializer.SerializablePtr[V]](s string) (V, error) {
	var value V
	var producer E

	size := P(&value).Size()
	if err := serializer.CheckMinByteLength[E](2*size, len(s)); err != nil {
		return value, err
	}

	buf := make([]byte, size)
	for i := range buf {
		hi, ok := Nibble(s[2*i])
		if !ok {
			return value, producer.InvalidChar(s[2*i], 2*i)
		}
		lo, ok := Nibble(s[2*i+1])
		if !ok {
			return value, producer.InvalidChar(s[2*i+1], 2*i+1)
		}
		buf[i] = hi<<4 | lo
	}

	if err := P(&value).SetBytes(buf); err != nil {
		var zero V

		return zero, err
	}

	return value, nil
}
