package serializer

// Source is a cursor over bytes that are consumed front to back.
type Source interface {
	// Remaining returns the number of bytes that can be read.
	Remaining() int
	// ReadExact fills buf completely and advances the source past the bytes read.
	// If fewer than len(buf) bytes remain, it fails with a length error and consumes nothing.
	ReadExact(buf []byte) (int, error)
}

// Sink is a cursor over bytes that are filled front to back.
type Sink interface {
	// Remaining returns the number of bytes that can be written.
	Remaining() int
	// WriteExact writes buf completely and advances the sink past the bytes written.
	// If fewer than len(buf) bytes remain, it fails with a length error and writes nothing.
	WriteExact(buf []byte) (int, error)
}

// ReservingSink is a Sink that hands out its next bytes to be written in place.
type ReservingSink interface {
	Sink
	// Reserve returns the next n bytes and advances the sink past them.
	Reserve(n int) ([]byte, error)
}

// FromSource decodes a V from the next SizeOf[V]() bytes of src.
// If src holds fewer bytes, it fails with E.BadLength(src.Remaining(), size)
// and src is left unconsumed. Otherwise exactly size bytes are consumed, even if
// SetBytes rejects them.
func FromSource[V any, E BadLengthProducer[E], P SerializablePtr[V]](src Source) (V, error) {
	var value V

	size := P(&value).Size()
	if err := CheckMinByteLength[E](size, src.Remaining()); err != nil {
		return value, err
	}

	buf := make([]byte, size)
	if _, err := src.ReadExact(buf); err != nil {
		return value, err
	}

	if err := P(&value).SetBytes(buf); err != nil {
		var zero V

		return zero, err
	}

	return value, nil
}

// WriteTo encodes value into the next value.Size() bytes of sink.
// If sink has less room, it fails with E.BadLength(sink.Remaining(), size)
// and nothing is written.
func WriteTo[E BadLengthProducer[E]](sink Sink, value Serializable) error {
	size := value.Size()
	if err := CheckMinByteLength[E](size, sink.Remaining()); err != nil {
		return err
	}

	if reserving, ok := sink.(ReservingSink); ok {
		buf, err := reserving.Reserve(size)
		if err != nil {
			return err
		}
		value.PutBytes(buf)

		return nil
	}

	_, err := sink.WriteExact(ToBytes(value))

	return err
}
