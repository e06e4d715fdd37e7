package stream

import (
	"github.com/iotaledger/hive.go/fixedbytes/serializer"
)

// SliceSource is the canonical serializer.Source: a borrowed byte slice that
// shrinks from the front as it is read. The caller keeps ownership of the
// underlying array.
//
//	src := stream.SliceSource(data)
//	first, err := serializer.FromSource[serializer.Uint16, serializer.Error](&src)
type SliceSource []byte

// Remaining returns the number of unread bytes.
func (s *SliceSource) Remaining() int {
	return len(*s)
}

// ReadExact copies the next len(buf) bytes into buf.
func (s *SliceSource) ReadExact(buf []byte) (int, error) {
	next, err := s.Next(len(buf))
	if err != nil {
		return 0, err
	}

	return copy(buf, next), nil
}

// Next returns the next n bytes without copying them.
func (s *SliceSource) Next(n int) ([]byte, error) {
	if n > len(*s) {
		return nil, serializer.NewBadLength(len(*s), n)
	}

	next := (*s)[:n:n]
	*s = (*s)[n:]

	return next, nil
}

// SliceSink is the canonical serializer.Sink: a borrowed, writable byte slice
// that shrinks from the front as it is written.
type SliceSink []byte

// Remaining returns the number of bytes that can still be written.
func (s *SliceSink) Remaining() int {
	return len(*s)
}

// WriteExact copies buf into the next len(buf) bytes of the sink.
func (s *SliceSink) WriteExact(buf []byte) (int, error) {
	next, err := s.Reserve(len(buf))
	if err != nil {
		return 0, err
	}

	return copy(next, buf), nil
}

// Reserve returns the next n bytes of the sink to be written in place.
func (s *SliceSink) Reserve(n int) ([]byte, error) {
	if n > len(*s) {
		return nil, serializer.NewBadLength(len(*s), n)
	}

	next := (*s)[:n:n]
	*s = (*s)[n:]

	return next, nil
}

var (
	_ serializer.Source        = (*SliceSource)(nil)
	_ serializer.ReservingSink = (*SliceSink)(nil)
)
