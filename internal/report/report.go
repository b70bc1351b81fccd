// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes PaperRows as a table, CSV, JSON, YAML, or a SQLite
// file. Every format uses the column order of types.ColumnNames.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/get-papers/pkg/types"
)

// NoResults is printed in place of an empty table.
const NoResults = "No matching papers found."

// FormatFromPath infers the report format from a file extension. An empty
// path means stdout and selects the table format.
func FormatFromPath(path string) (types.ReportFormat, error) {
	if path == "" {
		return types.FormatTable, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return types.FormatCSV, nil
	case ".json":
		return types.FormatJSON, nil
	case ".yaml", ".yml":
		return types.FormatYAML, nil
	case ".db", ".sqlite", ".sqlite3":
		return types.FormatSQLite, nil
	case ".txt":
		return types.FormatTable, nil
	default:
		return "", fmt.Errorf("cannot infer report format from %q: use .csv, .json, .yaml, .db, or set --format", path)
	}
}

// Resolve fills in an empty Format from Output and validates the combination.
func Resolve(cfg types.ReportConfig) (types.ReportConfig, error) {
	if cfg.Format == "" {
		f, err := FormatFromPath(cfg.Output)
		if err != nil {
			return cfg, err
		}
		cfg.Format = f
	}
	switch cfg.Format {
	case types.FormatTable, types.FormatCSV, types.FormatJSON, types.FormatYAML:
	case types.FormatSQLite:
		if cfg.Output == "" {
			return cfg, fmt.Errorf("sqlite format needs an output file")
		}
	default:
		return cfg, fmt.Errorf("unsupported format %q: use table, csv, json, yaml, or sqlite", cfg.Format)
	}
	return cfg, nil
}

// WriteFile writes rows to cfg.Output in cfg.Format, replacing any existing
// file. cfg must have been passed through Resolve.
func WriteFile(cfg types.ReportConfig, rows []types.PaperRow) error {
	if cfg.Format == types.FormatSQLite {
		return WriteSQLite(cfg.Output, rows)
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	if err := Write(f, cfg.Format, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write encodes rows to w. The sqlite format is file-only; use WriteFile.
func Write(w io.Writer, format types.ReportFormat, rows []types.PaperRow) error {
	switch format {
	case types.FormatTable, "":
		FormatTable(rows, w)
		return nil
	case types.FormatCSV:
		return FormatCSV(rows, w)
	case types.FormatJSON:
		return FormatJSON(rows, w)
	case types.FormatYAML:
		return FormatYAML(rows, w)
	default:
		return fmt.Errorf("format %q cannot be written to a stream", format)
	}
}

// FormatCSV writes a header line followed by one record per row.
func FormatCSV(rows []types.PaperRow, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(types.ColumnNames); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(r.Columns()); err != nil {
			return fmt.Errorf("writing CSV row %s: %w", r.PubmedID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// FormatJSON writes rows as an indented JSON array.
func FormatJSON(rows []types.PaperRow, w io.Writer) error {
	if rows == nil {
		rows = []types.PaperRow{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// FormatYAML writes rows as a YAML list.
func FormatYAML(rows []types.PaperRow, w io.Writer) error {
	if rows == nil {
		rows = []types.PaperRow{}
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(rows)
}

// maxColumnWidth caps each table column; longer values are truncated.
var maxColumnWidth = []int{10, 50, 16, 30, 40, 40}

// FormatTable writes rows as a human-readable table to w.
func FormatTable(rows []types.PaperRow, w io.Writer) {
	if len(rows) == 0 {
		fmt.Fprintln(w, NoResults)
		return
	}

	widths := make([]int, len(types.ColumnNames))
	for i, name := range types.ColumnNames {
		widths[i] = utf8.RuneCountInString(name)
	}
	for _, r := range rows {
		for i, v := range r.Columns() {
			n := utf8.RuneCountInString(v)
			if n > maxColumnWidth[i] {
				n = maxColumnWidth[i]
			}
			if n > widths[i] {
				widths[i] = n
			}
		}
	}

	writeTableLine(w, types.ColumnNames, widths)
	total := 0
	for _, wd := range widths {
		total += wd + 2
	}
	fmt.Fprintln(w, strings.Repeat("-", total-2))
	for _, r := range rows {
		cols := r.Columns()
		for i := range cols {
			cols[i] = truncate(cols[i], widths[i])
		}
		writeTableLine(w, cols, widths)
	}

	fmt.Fprintf(w, "\n%d papers\n", len(rows))
}

func writeTableLine(w io.Writer, cols []string, widths []int) {
	for i, c := range cols {
		if i == len(cols)-1 {
			fmt.Fprintln(w, c)
			break
		}
		fmt.Fprintf(w, "%-*s  ", widths[i], c)
	}
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max-3]) + "..."
}
