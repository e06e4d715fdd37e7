package stream

import (
	"io"

	"github.com/iotaledger/hive.go/fixedbytes/serializer"
	"github.com/iotaledger/hive.go/ierrors"
)

// Read decodes a V from the next SizeOf[V]() bytes of reader.
// Unlike serializer.FromSource a plain io.Reader cannot report its remaining
// length up front, so a short read consumes what was available and fails with
// a serializer.Error of KindBadLength.
func Read[V any, P serializer.SerializablePtr[V]](reader io.Reader) (V, error) {
	var value V

	readBytes, err := ReadBytes(reader, P(&value).Size())
	if err != nil {
		return value, err
	}

	if err := P(&value).SetBytes(readBytes); err != nil {
		var zero V

		return zero, ierrors.Wrap(err, "failed to decode read bytes")
	}

	return value, nil
}

// ReadBytes reads exactly length bytes from reader.
func ReadBytes(reader io.Reader, length int) ([]byte, error) {
	readBytes := make([]byte, length)

	nBytes, err := io.ReadFull(reader, readBytes)
	switch {
	case ierrors.Is(err, io.EOF), ierrors.Is(err, io.ErrUnexpectedEOF):
		return nil, ierrors.Wrap(serializer.NewBadLength(nBytes, length), "failed to read serialized bytes")
	case err != nil:
		return nil, ierrors.Wrap(err, "failed to read serialized bytes")
	}

	return readBytes, nil
}
