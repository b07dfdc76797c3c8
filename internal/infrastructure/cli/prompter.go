package cli

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/doeshing/rkl-go/internal/ports"
)

// Prompter reads disambiguation choices from stdin, one line at a time.
type Prompter struct {
	in *bufio.Reader
}

// NewPrompter constructs a prompter reading from in (stdin when nil).
func NewPrompter(in io.Reader) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	return &Prompter{in: bufio.NewReader(in)}
}

// ReadLine returns the next line without its terminator. A final line
// without a newline is returned as is.
func (p *Prompter) ReadLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

var _ ports.LineReader = (*Prompter)(nil)
