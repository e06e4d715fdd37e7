package serializer

import (
	"fmt"

	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrInvalidData gets returned when a wire unit has the right length but does not describe a valid value.
	ErrInvalidData = ierrors.New("invalid data")
	// ErrBadLength gets returned when a buffer, source or sink holds fewer bytes than required.
	ErrBadLength = ierrors.New("bad length")
	// ErrInvalidChar gets returned when a hex string contains a character outside of [0-9a-fA-F].
	ErrInvalidChar = ierrors.New("invalid char")
)

// BadLengthProducer is implemented by error types that can report a length mismatch.
// It gates FromSlice, FromSource and WriteTo: the methods are called on the zero value of E.
type BadLengthProducer[E any] interface {
	error
	// BadLength returns an error signaling that found bytes were available but expected were required.
	BadLength(found int, expected int) E
}

// InvalidCharProducer is implemented by error types that can report a character
// outside of the hex alphabet. The methods are called on the zero value of E.
type InvalidCharProducer[E any] interface {
	error
	// InvalidChar returns an error signaling that char at index is not a hex digit.
	InvalidChar(char byte, index int) E
}

// HexErrorProducer combines the capabilities needed to parse hex strings.
type HexErrorProducer[E any] interface {
	BadLengthProducer[E]
	InvalidCharProducer[E]
}

// Kind is the failure reason of an Error.
type Kind byte

const (
	// KindInvalidData denotes a semantically malformed wire unit.
	KindInvalidData Kind = iota + 1
	// KindBadLength denotes a length mismatch.
	KindBadLength
	// KindInvalidChar denotes a character outside of the hex alphabet.
	KindInvalidChar
)

// String returns the name of the Kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidData:
		return "InvalidData"
	case KindBadLength:
		return "BadLength"
	case KindInvalidChar:
		return "InvalidChar"
	default:
		return fmt.Sprintf("Kind(%d)", byte(k))
	}
}

// Error is the default error type of the fixedbytes codecs. It satisfies both
// BadLengthProducer and InvalidCharProducer and matches ErrInvalidData,
// ErrBadLength and ErrInvalidChar through ierrors.Is.
type Error struct {
	// Kind is the failure reason.
	Kind Kind
	// Found is the available length for KindBadLength.
	Found int
	// Expected is the required length for KindBadLength.
	Expected int
	// Char is the offending character for KindInvalidChar.
	Char byte
	// Index is the position of Char in the input for KindInvalidChar.
	Index int
}

// NewInvalidData returns an Error of KindInvalidData.
func NewInvalidData() Error {
	return Error{Kind: KindInvalidData}
}

// NewBadLength returns an Error of KindBadLength.
func NewBadLength(found int, expected int) Error {
	return Error{Kind: KindBadLength, Found: found, Expected: expected}
}

// NewInvalidChar returns an Error of KindInvalidChar.
func NewInvalidChar(char byte, index int) Error {
	return Error{Kind: KindInvalidChar, Char: char, Index: index}
}

// BadLength implements BadLengthProducer.
func (Error) BadLength(found int, expected int) Error {
	return NewBadLength(found, expected)
}

// InvalidChar implements InvalidCharProducer.
func (Error) InvalidChar(char byte, index int) Error {
	return NewInvalidChar(char, index)
}

func (e Error) Error() string {
	switch e.Kind {
	case KindInvalidData:
		return ErrInvalidData.Error()
	case KindBadLength:
		return fmt.Sprintf("%s: found %d, expected %d", ErrBadLength, e.Found, e.Expected)
	case KindInvalidChar:
		return fmt.Sprintf("%s: %q at index %d", ErrInvalidChar, e.Char, e.Index)
	default:
		return fmt.Sprintf("unknown error kind %d", e.Kind)
	}
}

// Is reports whether target is the sentinel of e's Kind.
func (e Error) Is(target error) bool {
	switch target {
	case ErrInvalidData:
		return e.Kind == KindInvalidData
	case ErrBadLength:
		return e.Kind == KindBadLength
	case ErrInvalidChar:
		return e.Kind == KindInvalidChar
	default:
		return false
	}
}

// CheckMinByteLength returns E.BadLength if length is smaller than min.
func CheckMinByteLength[E BadLengthProducer[E]](min int, length int) error {
	if length < min {
		var producer E

		return producer.BadLength(length, min)
	}

	return nil
}
