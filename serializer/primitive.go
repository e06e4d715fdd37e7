package serializer

import (
	"encoding/binary"

	"github.com/holiman/uint256"
)

// The primitive codecs encode least significant byte first and never fail to decode.

// Uint8 is the codec of a uint8.
type Uint8 uint8

func (Uint8) Size() int { return OneByte }

func (u Uint8) PutBytes(buf []byte) { buf[0] = byte(u) }

func (u *Uint8) SetBytes(buf []byte) error {
	*u = Uint8(buf[0])

	return nil
}

// Uint16 is the codec of a uint16.
type Uint16 uint16

func (Uint16) Size() int { return UInt16ByteSize }

func (u Uint16) PutBytes(buf []byte) { binary.LittleEndian.PutUint16(buf, uint16(u)) }

func (u *Uint16) SetBytes(buf []byte) error {
	*u = Uint16(binary.LittleEndian.Uint16(buf))

	return nil
}

// Uint32 is the codec of a uint32.
type Uint32 uint32

func (Uint32) Size() int { return UInt32ByteSize }

func (u Uint32) PutBytes(buf []byte) { binary.LittleEndian.PutUint32(buf, uint32(u)) }

func (u *Uint32) SetBytes(buf []byte) error {
	*u = Uint32(binary.LittleEndian.Uint32(buf))

	return nil
}

// Uint64 is the codec of a uint64.
type Uint64 uint64

func (Uint64) Size() int { return UInt64ByteSize }

func (u Uint64) PutBytes(buf []byte) { binary.LittleEndian.PutUint64(buf, uint64(u)) }

func (u *Uint64) SetBytes(buf []byte) error {
	*u = Uint64(binary.LittleEndian.Uint64(buf))

	return nil
}

// Int8 is the codec of an int8.
type Int8 int8

func (Int8) Size() int { return OneByte }

func (i Int8) PutBytes(buf []byte) { buf[0] = byte(i) }

func (i *Int8) SetBytes(buf []byte) error {
	*i = Int8(buf[0])

	return nil
}

// Int16 is the codec of an int16.
type Int16 int16

func (Int16) Size() int { return Int16ByteSize }

func (i Int16) PutBytes(buf []byte) { binary.LittleEndian.PutUint16(buf, uint16(i)) }

func (i *Int16) SetBytes(buf []byte) error {
	*i = Int16(binary.LittleEndian.Uint16(buf))

	return nil
}

// Int32 is the codec of an int32.
type Int32 int32

func (Int32) Size() int { return Int32ByteSize }

func (i Int32) PutBytes(buf []byte) { binary.LittleEndian.PutUint32(buf, uint32(i)) }

func (i *Int32) SetBytes(buf []byte) error {
	*i = Int32(binary.LittleEndian.Uint32(buf))

	return nil
}

// Int64 is the codec of an int64.
type Int64 int64

func (Int64) Size() int { return Int64ByteSize }

func (i Int64) PutBytes(buf []byte) { binary.LittleEndian.PutUint64(buf, uint64(i)) }

func (i *Int64) SetBytes(buf []byte) error {
	*i = Int64(binary.LittleEndian.Uint64(buf))

	return nil
}

// Uint128 is the codec of an unsigned 128 bit integer made of two 64 bit halves.
type Uint128 struct {
	Lo uint64
	Hi uint64
}

func (Uint128) Size() int { return UInt128ByteSize }

func (u Uint128) PutBytes(buf []byte) {
	binary.LittleEndian.PutUint64(buf[:UInt64ByteSize], u.Lo)
	binary.LittleEndian.PutUint64(buf[UInt64ByteSize:], u.Hi)
}

func (u *Uint128) SetBytes(buf []byte) error {
	u.Lo = binary.LittleEndian.Uint64(buf[:UInt64ByteSize])
	u.Hi = binary.LittleEndian.Uint64(buf[UInt64ByteSize:])

	return nil
}

// Uint256 is the codec of a uint256.Int. The limbs of a uint256.Int are
// already ordered least significant first, so they are written in order.
type Uint256 uint256.Int

// NewUint256 returns the codec of x.
func NewUint256(x *uint256.Int) Uint256 {
	return Uint256(*x)
}

// Int returns a copy of u as uint256.Int.
func (u Uint256) Int() *uint256.Int {
	x := uint256.Int(u)

	return &x
}

func (Uint256) Size() int { return UInt256ByteSize }

func (u Uint256) PutBytes(buf []byte) {
	for i, limb := range u {
		binary.LittleEndian.PutUint64(buf[i*UInt64ByteSize:], limb)
	}
}

func (u *Uint256) SetBytes(buf []byte) error {
	for i := range u {
		u[i] = binary.LittleEndian.Uint64(buf[i*UInt64ByteSize:])
	}

	return nil
}
