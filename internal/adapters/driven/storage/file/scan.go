package file

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/custodia-labs/fleetbook/internal/core/domain"
)

// lineReader yields the non-blank lines of a store file.
type lineReader struct {
	scanner *bufio.Scanner
	line    int
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{scanner: bufio.NewScanner(r)}
}

// next returns the next non-blank line, trimmed.
func (r *lineReader) next() (string, error) {
	for r.scanner.Scan() {
		r.line++
		text := strings.TrimSpace(r.scanner.Text())
		if text != "" {
			return text, nil
		}
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", corruptf("line %d: unexpected end of file", r.line+1)
}

// header parses the record count line and checks it against limit.
func (r *lineReader) header(limit int) (int, error) {
	text, err := r.next()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, corruptf("line %d: count %q is not a number", r.line, text)
	}
	if n < 0 || n > limit {
		return 0, corruptf("line %d: count %d outside 0..%d", r.line, n, limit)
	}
	return n, nil
}

// floats parses a line of exactly want finite numbers.
func (r *lineReader) floats(want int) ([]float64, error) {
	text, err := r.next()
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(text)
	if len(fields) != want {
		return nil, corruptf("line %d: %d values, want %d", r.line, len(fields), want)
	}
	out := make([]float64, want)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, corruptf("line %d: value %q is not a number", r.line, f)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, corruptf("line %d: value %q is not finite", r.line, f)
		}
		out[i] = v
	}
	return out, nil
}

func corruptf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), domain.ErrCorruptStore)
}

// openStore opens path for reading. A missing file returns a nil file
// and no error.
func openStore(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

// writeStore replaces the file at path with data.
func writeStore(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
