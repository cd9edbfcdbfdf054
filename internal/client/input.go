package client

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// PasswordReader returns a password typed by the user.
type PasswordReader func(prompt string) (string, error)

// readTerminalPassword is a test seam for term.ReadPassword.
var readTerminalPassword = term.ReadPassword

// NewStdinPasswordReader reads from the terminal without echo when stdin is
// a terminal, otherwise the first line of stdin. Prompts go to w.
func NewStdinPasswordReader(w io.Writer) PasswordReader {
	return func(prompt string) (string, error) {
		fd := int(os.Stdin.Fd())
		if !term.IsTerminal(fd) {
			return readLine(bufio.NewReader(os.Stdin))
		}

		if _, err := fmt.Fprint(w, prompt); err != nil {
			return "", err
		}
		pw, err := readTerminalPassword(fd)
		_, _ = fmt.Fprintln(w)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(pw), nil
	}
}

// NewReaderPasswordReader reads one line per call from r.
func NewReaderPasswordReader(r io.Reader) PasswordReader {
	reader := bufio.NewReader(r)
	return func(string) (string, error) {
		return readLine(reader)
	}
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
