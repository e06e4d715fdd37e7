package stream

import (
	"io"

	"github.com/iotaledger/hive.go/fixedbytes/serializer"
	"github.com/iotaledger/hive.go/ierrors"
)

// Write writes the wire unit of value to writer.
func Write(writer io.Writer, value serializer.Serializable) error {
	return WriteBytes(writer, serializer.ToBytes(value))
}

// WriteBytes writes all of bytes to writer.
func WriteBytes(writer io.Writer, bytes []byte) error {
	if _, err := writer.Write(bytes); err != nil {
		return ierrors.Wrap(err, "failed to write serialized bytes")
	}

	return nil
}

// WriteAll writes the wire units of values back to back into sink.
// It stops at the first value that does not fit; the values before it stay written.
func WriteAll[E serializer.BadLengthProducer[E]](sink serializer.Sink, values ...serializer.Serializable) error {
	for i, value := range values {
		if err := serializer.WriteTo[E](sink, value); err != nil {
			return ierrors.Wrapf(err, "failed to write value %d", i)
		}
	}

	return nil
}
