package hex

import (
	"fmt"

	"github.com/iotaledger/hive.go/fixedbytes/serializer"
)

// Hex decodes the hex digit pairs of literal into a slice of exactly size bytes.
// Decoding stops when either side is exhausted: a shorter literal is zero padded,
// a longer one is truncated without looking at the rest.
//
// Hex is meant for constants, typically in a package level var. Malformed digits
// in the decoded part are a programmer error and make it panic.
func Hex(literal string, size int) []byte {
	out := make([]byte, size)

	for i := range out {
		if 2*i >= len(literal) {
			break
		}
		if 2*i+1 >= len(literal) {
			panic(fmt.Sprintf("hex literal %q has an odd number of digits", literal))
		}

		hi, ok := Nibble(literal[2*i])
		if !ok {
			panic(fmt.Sprintf("hex literal %q has an invalid digit %q at index %d", literal, literal[2*i], 2*i))
		}
		lo, ok := Nibble(literal[2*i+1])
		if !ok {
			panic(fmt.Sprintf("hex literal %q has an invalid digit %q at index %d", literal, literal[2*i+1], 2*i+1))
		}
		out[i] = hi<<4 | lo
	}

	return out
}

// MustFromHex builds a V from a hex literal sized with Hex.
// It panics if the literal is malformed or the wire unit is rejected.
func MustFromHex[V any, P serializer.SerializablePtr[V]](literal string) V {
	var value V
	if err := P(&value).SetBytes(Hex(literal, P(&value).Size())); err != nil {
		panic(fmt.Sprintf("hex literal %q is not a valid %T: %s", literal, value, err))
	}

	return value
}
