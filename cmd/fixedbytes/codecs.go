package main

import (
	"math/big"
	"strconv"

	"github.com/holiman/uint256"

	"github.com/iotaledger/hive.go/fixedbytes/serializer"
	"github.com/iotaledger/hive.go/fixedbytes/serializer/hex"
	"github.com/iotaledger/hive.go/ierrors"
)

var ErrUnknownType = ierrors.New("unknown wire type")

// codec converts between the textual and the wire form of one primitive type.
type codec struct {
	// parse reads a decimal (or 0x/0o/0b prefixed) literal.
	parse func(text string) (serializer.Serializable, error)
	// format decodes a hex wire unit and prints it as decimal.
	format func(hexString string) (string, error)
}

var codecs = map[string]codec{
	"u8":   unsignedCodec[serializer.Uint8](8),
	"u16":  unsignedCodec[serializer.Uint16](16),
	"u32":  unsignedCodec[serializer.Uint32](32),
	"u64":  unsignedCodec[serializer.Uint64](64),
	"i8":   signedCodec[serializer.Int8](8),
	"i16":  signedCodec[serializer.Int16](16),
	"i32":  signedCodec[serializer.Int32](32),
	"i64":  signedCodec[serializer.Int64](64),
	"u256": uint256Codec(),
}

func codecFor(name string) (codec, error) {
	c, exists := codecs[name]
	if !exists {
		return codec{}, ierrors.Wrapf(ErrUnknownType, "%q", name)
	}

	return c, nil
}

func unsignedCodec[V ~uint8 | ~uint16 | ~uint32 | ~uint64, P serializer.SerializablePtr[V]](bits int) codec {
	return codec{
		parse: func(text string) (serializer.Serializable, error) {
			value, err := strconv.ParseUint(text, 0, bits)
			if err != nil {
				return nil, ierrors.Wrapf(err, "invalid %d bit unsigned integer", bits)
			}
			v := V(value)

			return P(&v), nil
		},
		format: func(hexString string) (string, error) {
			v, err := hex.FromHexStr[V, serializer.Error, P](hexString)
			if err != nil {
				return "", err
			}

			return strconv.FormatUint(uint64(v), 10), nil
		},
	}
}

func signedCodec[V ~int8 | ~int16 | ~int32 | ~int64, P serializer.SerializablePtr[V]](bits int) codec {
	return codec{
		parse: func(text string) (serializer.Serializable, error) {
			value, err := strconv.ParseInt(text, 0, bits)
			if err != nil {
				return nil, ierrors.Wrapf(err, "invalid %d bit signed integer", bits)
			}
			v := V(value)

			return P(&v), nil
		},
		format: func(hexString string) (string, error) {
			v, err := hex.FromHexStr[V, serializer.Error, P](hexString)
			if err != nil {
				return "", err
			}

			return strconv.FormatInt(int64(v), 10), nil
		},
	}
}

func uint256Codec() codec {
	return codec{
		parse: func(text string) (serializer.Serializable, error) {
			b, ok := new(big.Int).SetString(text, 0)
			if !ok || b.Sign() < 0 {
				return nil, ierrors.Errorf("invalid 256 bit unsigned integer %q", text)
			}
			value, overflow := uint256.FromBig(b)
			if overflow {
				return nil, ierrors.Errorf("%q overflows 256 bits", text)
			}
			v := serializer.NewUint256(value)

			return &v, nil
		},
		format: func(hexString string) (string, error) {
			v, err := hex.FromHexStr[serializer.Uint256, serializer.Error](hexString)
			if err != nil {
				return "", err
			}

			return v.Int().ToBig().String(), nil
		},
	}
}
