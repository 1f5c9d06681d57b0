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

// passphraseEnv lets scripts unlock the vault without a prompt.
const passphraseEnv = "VAULT_PASSPHRASE"

// terminalReader prompts on out and reads from in. On a terminal the input
// is not echoed; otherwise one line is read.
type terminalReader struct {
	fd  int
	in  *bufio.Reader
	out io.Writer
}

// NewTerminalReader returns a SecretReader on stdin with prompts on stderr.
func NewTerminalReader() SecretReader {
	return newTerminalReader(int(os.Stdin.Fd()), os.Stdin, os.Stderr)
}

func newTerminalReader(fd int, in io.Reader, out io.Writer) *terminalReader {
	return &terminalReader{fd: fd, in: bufio.NewReader(in), out: out}
}

func (r *terminalReader) ReadSecret(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)

	if term.IsTerminal(r.fd) {
		secret, err := term.ReadPassword(r.fd)
		fmt.Fprintln(r.out)
		if err != nil {
			return "", fmt.Errorf("read secret: %w", err)
		}
		return string(secret), nil
	}

	line, err := r.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
