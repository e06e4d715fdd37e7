package stream

import (
	"bytes"
	"io"

	"github.com/iotaledger/hive.go/fixedbytes/serializer"
	"github.com/iotaledger/hive.go/ierrors"
)

// ByteReader is a serializer.Source backed by a bytes.Reader, so it can be
// handed to io based code and rewound with Seek.
type ByteReader struct {
	*bytes.Reader
}

func NewByteReader(b []byte) *ByteReader {
	return &ByteReader{
		Reader: bytes.NewReader(b),
	}
}

// BytesRead returns the number of bytes consumed so far.
func (b *ByteReader) BytesRead() int {
	return int(b.Size()) - b.Len()
}

// Remaining returns the number of unread bytes.
func (b *ByteReader) Remaining() int {
	return b.Len()
}

// ReadExact fills buf or fails without consuming anything.
func (b *ByteReader) ReadExact(buf []byte) (int, error) {
	if len(buf) > b.Len() {
		return 0, serializer.NewBadLength(b.Len(), len(buf))
	}

	n, err := io.ReadFull(b.Reader, buf)
	if err != nil {
		return n, ierrors.Wrap(err, "failed to read from byte reader")
	}

	return n, nil
}

var _ serializer.Source = (*ByteReader)(nil)
