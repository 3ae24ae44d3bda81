package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Render writes the run summary to w. Styled output draws a rounded
// table for terminals; plain output keeps one label per line so pipes
// and logs stay greppable.
func Render(w io.Writer, s *Summary, elapsed time.Duration, styled bool) {
	rows := []struct {
		label string
		value string
	}{
		{"Elapsed", FormatDuration(elapsed)},
		{"Folders scanned", strconv.Itoa(s.FoldersSeen)},
		{"Files scanned", strconv.Itoa(s.FilesSeen)},
		{"Files skipped", strconv.Itoa(s.FilesSkipped)},
		{"Non-image files", strconv.Itoa(s.NonImages)},
		{"Capture dates updated", strconv.Itoa(s.EmbeddedUpdated)},
		{"Modification times updated", strconv.Itoa(s.ModifiedUpdated)},
		{"Unresolved files", strconv.Itoa(s.Unresolved)},
		{"Errors", strconv.Itoa(s.Errors)},
	}

	if !styled {
		for _, row := range rows {
			fmt.Fprintf(w, "%s: %s\n", row.label, row.value)
		}
		return
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	for _, row := range rows {
		tw.AppendRow(table.Row{row.label, row.value})
	}
	fmt.Fprintln(w, tw.Render())
}
