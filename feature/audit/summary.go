package audit

import (
	"io"

	"fxr-query/core/reconcile"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrintSummary writes the run totals with digit grouping for tag.
func PrintSummary(w io.Writer, tag language.Tag, gameName string, s reconcile.Summary) error {
	p := message.NewPrinter(tag)
	_, err := p.Fprintf(w,
		"Game Searched: %s\nCSV FXR Count: %d\nUnused FXR Count: %d\nUsed FXR Count: %d\nExtra FXR Count: %d\n",
		gameName, s.Reference, s.Unused, s.Used, s.Extra)
	return err
}
