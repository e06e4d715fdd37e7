package serializer

import (
	"bytes"
	"fmt"
)

// Serializable is implemented by types whose binary representation is a wire unit
// of a fixed size.
type Serializable interface {
	// Size returns the length of the wire unit in bytes.
	// It is a constant of the type and must not depend on the receiver's value.
	Size() int
	// PutBytes writes the wire unit into buf, which is exactly Size() bytes long.
	PutBytes(buf []byte)
}

// Deserializable is a Serializable that can be reconstructed from its wire unit.
type Deserializable interface {
	Serializable
	// SetBytes reconstructs the receiver from buf, which is exactly Size() bytes long.
	// Length checks are not its concern; it fails only if buf is not a valid wire unit,
	// typically with an error matching ErrInvalidData. The decoding helpers pass a
	// private copy, so buf may be scrubbed but must not be retained.
	SetBytes(buf []byte) error
}

// SizeOf returns the wire size of V.
func SizeOf[V any, P SerializablePtr[V]]() int {
	var value V

	return P(&value).Size()
}

// ToBytes returns the wire unit of value in a newly allocated slice.
func ToBytes(value Serializable) []byte {
	buf := make([]byte, value.Size())
	value.PutBytes(buf)

	return buf
}

// PutInto writes the wire unit of value into dst without allocating.
// It panics if dst is not exactly value.Size() bytes long.
func PutInto(value Serializable, dst []byte) {
	if size := value.Size(); len(dst) != size {
		panic(fmt.Sprintf("destination of %d bytes does not fit a wire unit of %d bytes", len(dst), size))
	}

	value.PutBytes(dst)
}

// FromBytes decodes a V from exactly SizeOf[V]() bytes. Unlike FromSlice it
// treats a length mismatch as a programmer error and panics.
func FromBytes[V any, P SerializablePtr[V]](buf []byte) (V, error) {
	var value V
	if size := P(&value).Size(); len(buf) != size {
		panic(fmt.Sprintf("wire unit of %d bytes expected, got %d", size, len(buf)))
	}

	if err := P(&value).SetBytes(bytes.Clone(buf)); err != nil {
		var zero V

		return zero, err
	}

	return value, nil
}

// FromSlice decodes a V from the first SizeOf[V]() bytes of buf.
// If buf is shorter, it fails with E.BadLength(len(buf), size) without calling SetBytes.
// Trailing bytes are ignored. SetBytes works on a copy, buf is left untouched.
func FromSlice[V any, E BadLengthProducer[E], P SerializablePtr[V]](buf []byte) (V, error) {
	var value V

	size := P(&value).Size()
	if err := CheckMinByteLength[E](size, len(buf)); err != nil {
		return value, err
	}

	if err := P(&value).SetBytes(bytes.Clone(buf[:size])); err != nil {
		var zero V

		return zero, err
	}

	return value, nil
}
