package hex

import (
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/iotaledger/hive.go/fixedbytes/serializer"
)

const prefix = "0x"

// Encode returns the wire unit of value as lowercase hex without prefix.
func Encode(value serializer.Serializable) string {
	return string(appendHex(nil, serializer.ToBytes(value), lowerAlphabet))
}

// EncodeUpper returns the wire unit of value as uppercase hex without prefix.
func EncodeUpper(value serializer.Serializable) string {
	return string(appendHex(nil, serializer.ToBytes(value), upperAlphabet))
}

// Format writes the wire unit of value as hex. Types get the hex display by
// implementing fmt.Formatter on top of it:
//
//	func (b Beef) Format(s fmt.State, verb rune) { hex.Format(s, verb, b) }
//
// The verbs v, s and x print lowercase digits, X prints uppercase digits.
// The '#' flag prepends "0x".
func Format(s fmt.State, verb rune, value serializer.Serializable) {
	alphabet := lowerAlphabet
	switch verb {
	case 'v', 's', 'x':
	case 'X':
		alphabet = upperAlphabet
	default:
		fmt.Fprintf(s, "%%!%c(%T=%s)", verb, value, Encode(value))

		return
	}

	var out []byte
	if s.Flag('#') {
		out = append(out, prefix...)
	}

	_, _ = s.Write(appendHex(out, serializer.ToBytes(value), alphabet))
}

// Display wraps value so that it prints as hex with the fmt verbs handled by Format.
func Display(value serializer.Serializable) fmt.Formatter {
	return displayer{value: value}
}

type displayer struct {
	value serializer.Serializable
}

func (d displayer) Format(s fmt.State, verb rune) {
	Format(s, verb, d.value)
}

// Write writes the wire unit of value as lowercase hex to w.
func Write(w io.Writer, value serializer.Serializable) (int, error) {
	return w.Write(appendHex(nil, serializer.ToBytes(value), lowerAlphabet))
}

// MarshalText encodes the wire unit of value as "0x" prefixed hex.
func MarshalText(value serializer.Serializable) ([]byte, error) {
	return hexutil.Bytes(serializer.ToBytes(value)).MarshalText()
}

// UnmarshalText decodes "0x" prefixed hex into value. The text must hold exactly
// one wire unit, otherwise it fails with a serializer.Error of KindBadLength.
func UnmarshalText(text []byte, value serializer.Deserializable) error {
	var decoded hexutil.Bytes
	if err := decoded.UnmarshalText(text); err != nil {
		return err
	}

	if size := value.Size(); len(decoded) != size {
		return serializer.NewBadLength(len(decoded), size)
	}

	return value.SetBytes(decoded)
}

func appendHex(dst []byte, src []byte, alphabet string) []byte {
	for _, b := range src {
		dst = append(dst, alphabet[b>>4], alphabet[b&0x0f])
	}

	return dst
}
