// Package source streams the input text into the line queue.
package source

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/terassyi/venueview/internal/errors"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// Enqueuer receives lines as they are read.
type Enqueuer interface {
	Push(line string)
	Close()
}

// Open returns a reader for path, or stdin when path is empty.
// Closing the returned reader never closes stdin.
func Open(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewInputOpenError(path, err)
	}
	return f, nil
}

// Reader streams lines from an input into a queue.
type Reader struct {
	name string
	r    io.Reader
}

// NewReader creates a Reader. name is used in error reports; an empty name
// means standard input.
func NewReader(name string, r io.Reader) *Reader {
	return &Reader{name: name, r: r}
}

// ReadAll pushes every line of the input into q as it is read, then closes q.
// It returns the number of lines read. A read failure is returned as an
// *errors.InputError; q is closed in every case.
func (rd *Reader) ReadAll(ctx context.Context, q Enqueuer) (int, error) {
	defer q.Close()

	scanner := bufio.NewScanner(rd.r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	n := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		q.Push(strings.TrimSuffix(scanner.Text(), "\r"))
		n++
	}
	if err := scanner.Err(); err != nil {
		return n, errors.NewInputReadError(rd.name, n, err)
	}
	return n, nil
}

// ReadAll streams an unnamed input into q. See (*Reader).ReadAll.
func ReadAll(ctx context.Context, r io.Reader, q Enqueuer) (int, error) {
	return NewReader("", r).ReadAll(ctx, q)
}
