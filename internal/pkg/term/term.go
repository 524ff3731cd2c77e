// Package term holds the small terminal interaction primitives the
// interactive loop is built from.
package term

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type Terminal struct {
	reader *bufio.Reader
	out    io.Writer
}

func New(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Prompt prints the label and reads one trimmed line.
func (t *Terminal) Prompt(label string) (string, error) {
	if _, err := fmt.Fprintf(t.out, "%s: ", label); err != nil {
		return "", err
	}
	line, err := t.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a y/N question. Only "y" and "yes" (case-insensitive) count
// as confirmation.
func (t *Terminal) Confirm(prompt string) (bool, error) {
	if _, err := fmt.Fprintf(t.out, "%s [y/N]: ", prompt); err != nil {
		return false, err
	}
	line, err := t.reader.ReadString('\n')
	if err != nil && line == "" {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// Println writes one output line.
func (t *Terminal) Println(a ...any) {
	fmt.Fprintln(t.out, a...)
}

// Printf writes formatted output.
func (t *Terminal) Printf(format string, a ...any) {
	fmt.Fprintf(t.out, format, a...)
}
