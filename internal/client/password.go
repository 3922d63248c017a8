package client

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

type terminalPasswordReader struct {
	in     *os.File
	prompt io.Writer
}

// NewTerminalPasswordReader reads without echo when in is a terminal and
// takes the first line otherwise, so that the password can be piped.
func NewTerminalPasswordReader(in *os.File, prompt io.Writer) PasswordReader {
	return &terminalPasswordReader{in: in, prompt: prompt}
}

func (r *terminalPasswordReader) ReadPassword(prompt string) ([]byte, error) {
	fd := int(r.in.Fd())
	if !term.IsTerminal(fd) {
		return readLine(r.in)
	}

	fmt.Fprint(r.prompt, prompt)
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(r.prompt)
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	return password, nil
}

func readLine(in io.Reader) ([]byte, error) {
	line, err := bufio.NewReader(in).ReadBytes('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read password: %w", err)
	}
	return bytes.TrimRight(line, "\r\n"), nil
}
