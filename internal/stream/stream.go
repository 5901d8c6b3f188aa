// Package stream turns an HTTP Range header into a bounded, lazily read
// window over an audio file.
package stream

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// maxBytesPerResponse is the hard cap on how much a single response ever
// serves, no matter what the client asked for.
const maxBytesPerResponse = 325160

// chunkSize is how much is read from disk per Read call.
const chunkSize = 50000

// ErrMalformedRange reports a Range header that does not parse. Routers
// should answer it with a client error, not a 404.
var ErrMalformedRange = errors.New("malformed range header")

// Window is the byte interval a single response covers. End is inclusive.
type Window struct {
	Start int64
	End   int64
	Total int64
}

// ContentRange renders the window as a Content-Range header value.
func (w Window) ContentRange() string {
	return fmt.Sprintf("bytes %d-%d/%d", w.Start, w.End, w.Total)
}

// Length is the number of bytes the response body carries. A start at or
// beyond the end of file yields an empty window.
func (w Window) Length() int64 {
	if n := w.End - w.Start + 1; n > 0 && w.Start < w.Total {
		return n
	}
	return 0
}

// parseRange accepts `bytes=<start>-<end>?`; some clients omit the end.
func parseRange(header string) (start, end int64, hasEnd bool, err error) {
	value, ok := strings.CutPrefix(header, "bytes=")
	if !ok {
		return 0, 0, false, fmt.Errorf("%w: %q", ErrMalformedRange, header)
	}

	startStr, endStr, ok := strings.Cut(value, "-")
	if !ok {
		return 0, 0, false, fmt.Errorf("%w: %q", ErrMalformedRange, header)
	}

	start, err = strconv.ParseInt(startStr, 10, 64)
	if err != nil || start < 0 {
		return 0, 0, false, fmt.Errorf("%w: %q", ErrMalformedRange, header)
	}

	if endStr == "" {
		return start, 0, false, nil
	}
	end, err = strconv.ParseInt(endStr, 10, 64)
	if err != nil || end < start {
		return 0, 0, false, fmt.Errorf("%w: %q", ErrMalformedRange, header)
	}
	return start, end, true, nil
}

// Stream is a finite, non-restartable sequence of file chunks. It owns the
// underlying file handle; Close must run on every exit path, including
// early termination by the consumer.
type Stream struct {
	f         *os.File
	remaining int64
	Window    Window
}

// Resolve parses the Range header against the file at path and opens the
// resulting window for reading.
func Resolve(path, rangeHeader string) (*Stream, error) {
	start, end, hasEnd, err := parseRange(rangeHeader)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %q: %w", path, err)
	}
	total := info.Size()

	// never serve more than the per-response cap, never past EOF
	planned := min(start+maxBytesPerResponse, total) - 1
	if hasEnd && end < planned {
		planned = end
	}

	w := Window{Start: start, End: planned, Total: total}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	if w.Length() > 0 {
		if _, err := f.Seek(start, io.SeekStart); err != nil {
			f.Close()
			return nil, fmt.Errorf("seek %q: %w", path, err)
		}
	}

	return &Stream{f: f, remaining: w.Length(), Window: w}, nil
}

// Read yields at most one fixed-size sub-chunk per call and reports EOF
// once the window is exhausted.
func (s *Stream) Read(p []byte) (int, error) {
	if s.remaining <= 0 {
		return 0, io.EOF
	}

	limit := int64(len(p))
	if limit > chunkSize {
		limit = chunkSize
	}
	if limit > s.remaining {
		limit = s.remaining
	}

	n, err := s.f.Read(p[:limit])
	s.remaining -= int64(n)
	if err == nil && s.remaining <= 0 {
		err = io.EOF
	}
	return n, err
}

// Close releases the file handle.
func (s *Stream) Close() error {
	return s.f.Close()
}
