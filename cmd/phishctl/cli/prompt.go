package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// attachInput remembers in, and whether it is a terminal.
func (o *options) attachInput(in io.Reader) {
	o.tty = nil
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		o.tty = f
	}
	o.stdin = bufio.NewReader(in)
}

// readPassword prompts without echo on a terminal and reads a plain line
// from piped input otherwise.
func readPassword(opts *options, errOut io.Writer, prompt string) (string, error) {
	fmt.Fprint(errOut, prompt)

	if opts.tty != nil {
		b, err := term.ReadPassword(int(opts.tty.Fd()))
		fmt.Fprintln(errOut)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	line, err := opts.stdin.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
