package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/get-papers/internal/pubmed"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [pmid...]",
	Short: "Report company-affiliated authors for specific PubMed IDs",
	Long: `Fetch skips the search step and runs the extraction on the given PubMed
IDs. IDs may be separated by spaces or commas. With no arguments, IDs are read
from stdin one per line, so "get-papers-list ids ... | get-papers-list fetch"
works.`,
	RunE: runFetch,
}

func init() {
	addReportFlags(fetchCmd)

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	ids := splitIDs(args)
	if len(args) == 0 {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading IDs from stdin: %w", err)
		}
		ids = splitIDs(lines)
	}

	rcfg, err := reportConfig(cmd)
	if err != nil {
		return err
	}

	client := pubmed.NewClientFromConfig(pubmedConfig(cmd))
	runLog.Debug("fetching records", "count", len(ids))

	rows, err := client.Extract(cmd.Context(), ids)
	if err != nil {
		return err
	}
	runLog.Debug("papers with non-academic authors", "count", len(rows))

	return writeReport(cmd.OutOrStdout(), rcfg, rows)
}

// splitIDs splits each argument on commas and whitespace and drops empties.
func splitIDs(args []string) []string {
	var ids []string
	for _, a := range args {
		for _, f := range strings.FieldsFunc(a, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
		}) {
			ids = append(ids, f)
		}
	}
	return ids
}
