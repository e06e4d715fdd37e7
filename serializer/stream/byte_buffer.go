// Adapted (rename and added methods) from https://github.com/orcaman/writerseeker.
//
// The MIT License (MIT)
//
// Copyright (c) 2017 Or Hiltch
// Copyright (c) 2017 icza (https://stackoverflow.com/users/1705598/icza)
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package stream

import (
	"bytes"
	"io"
	"math"

	"github.com/iotaledger/hive.go/fixedbytes/serializer"
	"github.com/iotaledger/hive.go/ierrors"
)

// ByteBuffer is an in-memory io.WriteSeeker and an unbounded serializer.Sink.
// It grows as needed so a write never fails for lack of room.
type ByteBuffer struct {
	buf *bytes.Buffer
	pos int
}

// NewByteBuffer returns a ByteBuffer with capacity for the given number of bytes.
func NewByteBuffer(capacity ...int) *ByteBuffer {
	var length int
	if len(capacity) > 0 {
		length = capacity[0]
	}

	return &ByteBuffer{
		buf: bytes.NewBuffer(make([]byte, 0, length)),
	}
}

// Write writes p at the current position, overwriting existing bytes first and growing the buffer after.
func (w *ByteBuffer) Write(p []byte) (n int, err error) {
	// If the offset is past the end of the buffer, grow the buffer with null bytes.
	if extra := w.pos - w.buf.Len(); extra > 0 {
		if _, err := w.buf.Write(make([]byte, extra)); err != nil {
			return n, err
		}
	}

	if w.pos < w.buf.Len() {
		n = copy(w.buf.Bytes()[w.pos:], p)
		p = p[n:]
	}

	if len(p) > 0 {
		var bn int
		bn, err = w.buf.Write(p)
		n += bn
	}

	w.pos += n

	return n, err
}

// Remaining is unbounded for a ByteBuffer.
func (w *ByteBuffer) Remaining() int {
	return math.MaxInt
}

// WriteExact implements serializer.Sink.
func (w *ByteBuffer) WriteExact(buf []byte) (int, error) {
	return w.Write(buf)
}

// Seek moves the write position. Seeking past the end is allowed; the gap is zero filled on the next write.
func (w *ByteBuffer) Seek(offset int64, whence int) (int64, error) {
	newPos, offs := 0, int(offset)

	switch whence {
	case io.SeekStart:
		newPos = offs
	case io.SeekCurrent:
		newPos = w.pos + offs
	case io.SeekEnd:
		newPos = w.buf.Len() + offs
	default:
		return 0, ierrors.Errorf("invalid whence %d", whence)
	}

	if newPos < 0 {
		return 0, ierrors.New("negative result pos")
	}
	w.pos = newPos

	return int64(newPos), nil
}

// Reader returns a ByteReader over the written bytes.
func (w *ByteBuffer) Reader() *ByteReader {
	return NewByteReader(w.buf.Bytes())
}

// Bytes returns the written bytes. The slice aliases the buffer until the next write.
func (w *ByteBuffer) Bytes() []byte {
	return w.buf.Bytes()
}

var _ serializer.Sink = (*ByteBuffer)(nil)
