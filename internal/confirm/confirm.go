// Package confirm asks the operator before a destructive or bulk operation.
package confirm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Confirmer answers a yes/no question.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// Always answers every question with the same value without reading input.
// Always(true) backs the --yes flag and Always(false) is a test stub.
type Always bool

// Confirm implements Confirmer.
func (a Always) Confirm(string) (bool, error) {
	return bool(a), nil
}

// Prompt asks on Out and reads one line from In. Only "yes" or "y"
// (case-insensitive) confirm. End of input counts as "no".
type Prompt struct {
	In  io.Reader
	Out io.Writer
}

// Confirm implements Confirmer.
func (p Prompt) Confirm(question string) (bool, error) {
	if _, err := fmt.Fprintf(p.Out, "%s (yes/no): ", question); err != nil {
		return false, err
	}

	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		fmt.Fprintln(p.Out)
	}

	return IsYes(line), nil
}

// IsYes reports whether answer is an affirmative reply.
func IsYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "yes", "y":
		return true
	}
	return false
}
