package types

import (
	"encoding/binary"
	"fmt"

	"github.com/zeebo/xxh3"

	"github.com/iotaledger/hive.go/fixedbytes/serializer"
	"github.com/iotaledger/hive.go/fixedbytes/serializer/hex"
)

// ChecksumLength contains the byte length of a serialized Checksum.
const ChecksumLength = serializer.UInt64ByteSize

// Checksum is the xxh3 64 bit hash of a blob of data, stored least significant byte first.
// It detects corruption, it does not authenticate.
type Checksum [ChecksumLength]byte

// NewChecksum returns the Checksum of data.
func NewChecksum(data []byte) (c Checksum) {
	binary.LittleEndian.PutUint64(c[:], xxh3.Hash(data))

	return c
}

// Verify reports whether c is the Checksum of data.
func (c Checksum) Verify(data []byte) bool {
	return c == NewChecksum(data)
}

// Uint64 returns the hash value.
func (c Checksum) Uint64() uint64 {
	return binary.LittleEndian.Uint64(c[:])
}

func (c Checksum) Size() int {
	return ChecksumLength
}

func (c Checksum) PutBytes(buf []byte) {
	copy(buf, c[:])
}

func (c *Checksum) SetBytes(buf []byte) error {
	copy(c[:], buf)

	return nil
}

func (c Checksum) Format(s fmt.State, verb rune) {
	hex.Format(s, verb, c)
}
