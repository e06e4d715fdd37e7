package types

import (
	"crypto/rand"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"

	"github.com/iotaledger/hive.go/fixedbytes/serializer"
	"github.com/iotaledger/hive.go/fixedbytes/serializer/hex"
	"github.com/iotaledger/hive.go/ierrors"
)

// ErrBase58DecodeFailed is returned if a base58 encoded string can not be decoded.
var ErrBase58DecodeFailed = ierrors.New("failed to decode base58 encoded string")

// region Identifier ///////////////////////////////////////////////////////////////////////////////////////////////////

// IdentifierLength contains the byte length of a serialized Identifier.
const IdentifierLength = blake2b.Size256

// Identifier is a 32 byte blake2b-256 hash value that can be used to uniquely identify some blob of data.
type Identifier [IdentifierLength]byte

// NewIdentifier returns a new Identifier for the given data.
func NewIdentifier(data []byte) Identifier {
	return blake2b.Sum256(data)
}

// IdentifierFromRandomness generates a random Identifier.
func IdentifierFromRandomness() (id Identifier, err error) {
	if _, err = rand.Read(id[:]); err != nil {
		return id, errors.Wrap(err, "failed to read randomness")
	}

	return id, nil
}

// IdentifierFromBase58 un-serializes an Identifier from a base58 encoded string.
func IdentifierFromBase58(base58String string) (Identifier, error) {
	decodedBytes, err := base58.Decode(base58String)
	if err != nil {
		return Identifier{}, errors.Errorf("error while decoding base58 encoded Identifier (%v): %w", err, ErrBase58DecodeFailed)
	}

	if len(decodedBytes) != IdentifierLength {
		return Identifier{}, serializer.NewBadLength(len(decodedBytes), IdentifierLength)
	}

	return Identifier(decodedBytes), nil
}

// IdentifierFromHexString parses an Identifier from its unprefixed hex representation.
func IdentifierFromHexString(hexString string) (Identifier, error) {
	return hex.FromHexStr[Identifier, serializer.Error](hexString)
}

// Size returns the byte length of a serialized Identifier.
func (t Identifier) Size() int {
	return IdentifierLength
}

// PutBytes writes the Identifier into buf.
func (t Identifier) PutBytes(buf []byte) {
	copy(buf, t[:])
}

// SetBytes copies buf into the Identifier. Every 32 byte sequence is a valid Identifier.
func (t *Identifier) SetBytes(buf []byte) error {
	copy(t[:], buf)

	return nil
}

// Bytes returns the raw bytes of the Identifier.
func (t Identifier) Bytes() []byte {
	return t[:]
}

// Base58 returns a base58 encoded version of the Identifier.
func (t Identifier) Base58() string {
	return base58.Encode(t[:])
}

// String returns the base58 form wrapped in the type name.
func (t Identifier) String() string {
	return "Identifier(" + t.Base58() + ")"
}

// Format prints the Identifier as hex for the x and X verbs and as String otherwise.
func (t Identifier) Format(s fmt.State, verb rune) {
	switch verb {
	case 'x', 'X':
		hex.Format(s, verb, t)
	default:
		_, _ = fmt.Fprint(s, t.String())
	}
}

// MarshalText encodes the Identifier as "0x" prefixed hex.
func (t Identifier) MarshalText() ([]byte, error) {
	return hex.MarshalText(t)
}

// UnmarshalText decodes the Identifier from "0x" prefixed hex.
func (t *Identifier) UnmarshalText(text []byte) error {
	return hex.UnmarshalText(text, t)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
