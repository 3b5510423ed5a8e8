package usertimer

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/google/renameio/v2"
)

// Ledger is the newline-delimited record of timers declared single-use.
// Names are deduplicated before append and the file is always replaced
// whole, so a reader never sees a half-written line.
type Ledger struct {
	// Path is the ledger file location
	Path string
}

// NewLedger returns the ledger stored in the unit directory dir
func NewLedger(dir string) *Ledger {
	return &Ledger{Path: LedgerPath(dir)}
}

// Names returns the recorded names in file order. A missing ledger is empty.
func (l *Ledger) Names() ([]string, error) {
	data, err := os.ReadFile(l.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrLedger, l.Path, err)
	}

	var names []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if name := strings.TrimSpace(scanner.Text()); name != "" {
			names = append(names, name)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanning %s: %w", ErrLedger, l.Path, err)
	}
	return names, nil
}

// Contains reports whether name is recorded
func (l *Ledger) Contains(name string) (bool, error) {
	names, err := l.Names()
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

// Append records name. It returns false without writing when name is
// already present.
func (l *Ledger) Append(name string) (bool, error) {
	names, err := l.Names()
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == name {
			return false, nil
		}
	}

	var buf bytes.Buffer
	for _, n := range append(names, name) {
		buf.WriteString(n)
		buf.WriteByte('\n')
	}

	if err := renameio.WriteFile(l.Path, buf.Bytes(), FileMode); err != nil {
		return false, fmt.Errorf("%w: writing %s: %w", ErrLedger, l.Path, err)
	}
	return true, nil
}
