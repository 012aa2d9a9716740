// Package buffer provides the byte window and UTF-8 decoder that feed the
// CSS scanner.
package buffer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

const (
	// minBufferLen is the initial window size for streaming sources.
	minBufferLen = 1024

	// maxBufferLen is the largest window kept for seekable sources.
	maxBufferLen = minBufferLen * 64

	// maxEmptyReads is the number of consecutive empty reads tolerated
	// before a reader is considered broken.
	maxEmptyReads = 100
)

// ErrOutOfBounds is returned when a position outside of the input is requested.
var ErrOutOfBounds = errors.New("buffer out of bounds access")

// Window is a byte window over an input stream that supports random access.
//
// Seekable sources keep a bounded window that is refilled by seeking the
// underlying stream. Streaming sources cannot look backward so the window
// grows to retain every byte read so far.
type Window struct {
	rd io.Reader
	rs io.ReadSeeker // nil when streaming

	buf   []byte
	start int // absolute offset of buf[0]
	n     int // number of valid bytes in buf
	pos   int // absolute read position
	size  int // total length when seekable

	eof bool  // streaming source exhausted
	err error // sticky read error
}

// NewSeekable returns a window over a seekable stream. The stream length is
// determined up front and the stream is read from offset zero.
func NewSeekable(rs io.ReadSeeker) (*Window, error) {
	size, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("determine input length: %w", err)
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind input: %w", err)
	}

	n := int(size)
	if n > maxBufferLen {
		n = maxBufferLen
	}
	w := &Window{rd: rs, rs: rs, buf: make([]byte, n), size: int(size)}
	if w.size > 0 {
		w.fill(0)
	}
	if w.err != nil {
		return nil, w.err
	}
	return w, nil
}

// NewStreaming returns a window over a non-seekable stream.
func NewStreaming(r io.Reader) *Window {
	return &Window{rd: r, buf: make([]byte, minBufferLen)}
}

// Seekable returns true if the window was built over a seekable stream.
func (w *Window) Seekable() bool { return w.rs != nil }

// Pos returns the absolute byte offset of the next byte to be read.
func (w *Window) Pos() int { return w.pos }

// Len returns the input length known so far. For streaming sources this
// grows as more of the input is read.
func (w *Window) Len() int {
	if w.rs != nil {
		return w.size
	}
	return w.n
}

// Err returns the first read error encountered on the underlying stream.
func (w *Window) Err() error { return w.err }

// ReadByte reads and returns the next byte. Returns io.EOF at end of input.
func (w *Window) ReadByte() (byte, error) {
	if !w.load(w.pos) {
		return 0, w.readErr()
	}
	b := w.buf[w.pos-w.start]
	w.pos++
	return b, nil
}

// PeekByte returns the next byte without advancing the position.
func (w *Window) PeekByte() (byte, error) {
	if !w.load(w.pos) {
		return 0, w.readErr()
	}
	return w.buf[w.pos-w.start], nil
}

// Seek moves the read position to an absolute byte offset. Streaming sources
// read ahead as needed. Seeking past the end of input returns ErrOutOfBounds.
func (w *Window) Seek(pos int) error {
	if pos < 0 {
		return fmt.Errorf("%w, position: %d", ErrOutOfBounds, pos)
	}

	if w.rs != nil {
		if pos > w.size {
			return fmt.Errorf("%w, position: %d", ErrOutOfBounds, pos)
		}
	} else {
		for pos > w.n && !w.eof && w.err == nil {
			w.readChunk()
		}
		if w.err != nil {
			return w.err
		} else if pos > w.n {
			return fmt.Errorf("%w, position: %d", ErrOutOfBounds, pos)
		}
	}

	w.pos = pos
	return nil
}

// Slice returns the input between two absolute offsets. The end offset is
// clamped to the end of input. The read position is left unchanged.
func (w *Window) Slice(begin, end int) (string, error) {
	if end < begin {
		return "", fmt.Errorf("%w, position: %d", ErrOutOfBounds, end)
	}

	saved := w.pos
	defer func() { w.pos = saved }()

	if err := w.Seek(begin); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	for i := begin; i < end; i++ {
		b, err := w.ReadByte()
		if err == io.EOF {
			break
		} else if err != nil {
			return "", err
		}
		_ = buf.WriteByte(b)
	}
	return buf.String(), nil
}

// load ensures that the byte at pos is in the window.
// Returns false if pos is at or beyond the end of input or on read error.
func (w *Window) load(pos int) bool {
	if w.err != nil {
		return false
	}

	if w.rs != nil {
		if pos >= w.size {
			return false
		}
		if pos < w.start || pos >= w.start+w.n {
			w.fill(pos)
		}
		return w.err == nil
	}

	for pos >= w.n {
		if w.eof || w.err != nil {
			return false
		}
		w.readChunk()
	}
	return true
}

// fill repositions a seekable window so it starts at pos.
func (w *Window) fill(pos int) {
	if _, err := w.rs.Seek(int64(pos), io.SeekStart); err != nil {
		w.err = err
		return
	}

	n := len(w.buf)
	if remaining := w.size - pos; remaining < n {
		n = remaining
	}

	m, err := io.ReadFull(w.rs, w.buf[:n])
	if err != nil {
		w.err = fmt.Errorf("read input at %d: %w", pos, err)
	}
	w.start, w.n = pos, m
}

// readChunk appends the next chunk of a streaming source to the window,
// doubling the buffer when it is full.
func (w *Window) readChunk() {
	if w.n == len(w.buf) {
		buf := make([]byte, len(w.buf)*2)
		copy(buf, w.buf[:w.n])
		w.buf = buf
	}

	for i := 0; i < maxEmptyReads; i++ {
		m, err := w.rd.Read(w.buf[w.n:])
		w.n += m
		if err == io.EOF {
			w.eof = true
			return
		} else if err != nil {
			w.err = err
			return
		} else if m > 0 {
			return
		}
	}
	w.err = io.ErrNoProgress
}

// readErr returns the sticky error or io.EOF.
func (w *Window) readErr() error {
	if w.err != nil {
		return w.err
	}
	return io.EOF
}
