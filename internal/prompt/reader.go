// Package prompt reads answers from the interactive input stream.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// ErrInputClosed is returned once the input stream is exhausted or unreadable.
var ErrInputClosed = errors.New("input closed")

type Reader struct {
	in *bufio.Reader
}

func NewReader(in io.Reader) *Reader {
	return &Reader{in: bufio.NewReader(in)}
}

// ReadLine returns the next line without surrounding whitespace. A final line lacking a
// terminator is still returned; the read after it fails with ErrInputClosed.
func (r *Reader) ReadLine() (string, error) {
	line, err := r.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: %v", ErrInputClosed, err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.TrimSpace(line), nil
}

// Ask writes question as its own line to w and reads the answer.
func (r *Reader) Ask(w io.Writer, question string) (string, error) {
	if _, err := fmt.Fprintln(w, question); err != nil {
		return "", errors.Wrap(err, "write prompt")
	}
	return r.ReadLine()
}
