package audit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"fxr-query/core/reconcile"
)

const (
	reportExt       = ".txt"
	reportSeparator = "--------------------"
)

var reportPrefixes = map[reconcile.Classification]string{
	reconcile.ClassUnused: "UnusedFxrIds_",
	reconcile.ClassUsed:   "UsedFxrIds_",
	reconcile.ClassExtra:  "ExtraFxrIds_",
}

// ReportName returns the report file name for one bucket of a reference list.
func ReportName(class reconcile.Classification, stem string) string {
	return reportPrefixes[class] + stem + reportExt
}

// ParseReportName splits a report file name into its bucket and stem.
func ParseReportName(name string) (reconcile.Classification, string, bool) {
	if !strings.HasSuffix(name, reportExt) {
		return "", "", false
	}
	for _, class := range reconcile.Classifications {
		prefix := reportPrefixes[class]
		if strings.HasPrefix(name, prefix) && len(name) > len(prefix)+len(reportExt) {
			return class, strings.TrimSuffix(strings.TrimPrefix(name, prefix), reportExt), true
		}
	}
	return "", "", false
}

// RenderReport writes one report body.
func RenderReport(w io.Writer, gameName string, ids []int32) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Game Searched: %s\n", gameName)
	fmt.Fprintf(bw, "FXR Count: %d\n", len(ids))
	fmt.Fprintln(bw, reportSeparator)
	for _, id := range ids {
		bw.WriteString(strconv.FormatInt(int64(id), 10))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteReports writes the three reports of a run into dir and returns their
// paths in bucket order.
func WriteReports(dir, stem, gameName string, sets *reconcile.Sets) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	paths := make([]string, 0, len(reconcile.Classifications))
	for _, class := range reconcile.Classifications {
		path := filepath.Join(dir, ReportName(class, stem))
		if err := writeReport(path, gameName, sets.Sorted(class)); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeReport(path, gameName string, ids []int32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	if err := RenderReport(f, gameName, ids); err != nil {
		f.Close()
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return f.Close()
}

// Output groups the report files found for one reference stem.
type Output struct {
	Stem  string                              `json:"stem"`
	Files map[reconcile.Classification]string `json:"files"`
}

// Complete reports whether all three buckets are present.
func (o Output) Complete() bool {
	return len(o.Files) == len(reconcile.Classifications)
}

// ListOutputs finds report files in dir grouped by stem, sorted by stem.
// A missing directory yields no outputs.
func ListOutputs(dir string) ([]Output, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list outputs: %w", err)
	}

	byStem := make(map[string]*Output)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		class, stem, ok := ParseReportName(entry.Name())
		if !ok {
			continue
		}
		out, found := byStem[stem]
		if !found {
			out = &Output{Stem: stem, Files: make(map[reconcile.Classification]string)}
			byStem[stem] = out
		}
		out.Files[class] = filepath.Join(dir, entry.Name())
	}

	outputs := make([]Output, 0, len(byStem))
	for _, out := range byStem {
		outputs = append(outputs, *out)
	}
	sort.Slice(outputs, func(i, j int) bool {
		return outputs[i].Stem < outputs[j].Stem
	})
	return outputs, nil
}
