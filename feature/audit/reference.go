package audit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"fxr-query/core/reconcile"
)

var (
	// ErrInvalidReferenceFile is returned when the reference list is not a csv file.
	ErrInvalidReferenceFile = errors.New("reference file must be a .csv file")
	// ErrGameDirectory is returned when the game directory is missing or not a directory.
	ErrGameDirectory = errors.New("game directory is not a readable directory")
)

const (
	referenceExt     = ".csv"
	byteOrderMark    = "\ufeff"
	maxReferenceLine = 16 << 20
)

// ReferenceStem returns the reference file name without directory and extension.
func ReferenceStem(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}

// LoadReference reads the reference list at path.
func LoadReference(path string) (reconcile.IDSet, error) {
	if !strings.EqualFold(filepath.Ext(path), referenceExt) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidReferenceFile, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open reference file: %w", err)
	}
	defer f.Close()

	return ParseReference(f)
}

// ParseReference collects every comma separated field of every line that
// parses as a positive integer. Quotes carry no meaning, ragged rows and
// non-numeric fields are allowed, and a leading byte order mark is ignored.
func ParseReference(r io.Reader) (reconcile.IDSet, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxReferenceLine)

	ids := make(reconcile.IDSet)
	first := true
	for sc.Scan() {
		line := sc.Text()
		if first {
			line = strings.TrimPrefix(line, byteOrderMark)
			first = false
		}
		for _, field := range strings.Split(line, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(field), 10, 32)
			if err == nil && id > 0 {
				ids.Add(int32(id))
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reference list: %w", err)
	}
	return ids, nil
}
