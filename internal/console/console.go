// Package console reads player input one line at a time.
package console

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
)

type line struct {
	text string
	err  error
}

// Reader delivers newline-stripped lines from an io.Reader.
// The underlying read runs in its own goroutine so a blocked read can be
// abandoned when ctx is cancelled.
type Reader struct {
	src   *bufio.Reader
	lines chan line
	once  sync.Once
}

func NewReader(r io.Reader) *Reader {
	return &Reader{
		src:   bufio.NewReader(r),
		lines: make(chan line),
	}
}

// ReadLine returns the next line without its trailing "\r\n" or "\n".
// A final line without a newline is returned before io.EOF.
func (r *Reader) ReadLine(ctx context.Context) (string, error) {
	r.once.Do(func() { go r.pump() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l := <-r.lines:
		return l.text, l.err
	}
}

func (r *Reader) pump() {
	for {
		s, err := r.src.ReadString('\n')
		if err == io.EOF && s != "" {
			err = nil
		}
		if err != nil {
			// keep reporting the terminal error to any further callers
			for {
				r.lines <- line{err: err}
			}
		}
		r.lines <- line{text: strings.TrimRight(s, "\r\n")}
	}
}
