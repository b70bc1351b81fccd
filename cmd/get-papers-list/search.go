package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/get-papers/internal/pipeline"
	"github.com/pdiddy/get-papers/internal/pubmed"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search PubMed and report papers with company-affiliated authors",
	Long: `Search resolves the query with PubMed ESearch, fetches the matching
records with EFetch, and reports each paper that has at least one author
affiliated with a company.

The query is passed to PubMed unchanged, so PubMed syntax such as boolean
operators and field tags ("cancer[Title] AND 2024[PDAT]") works. When no
query is given on the command line, search prompts for one.

Results print as a table unless --file is given; the file extension picks
the format (.csv, .json, .yaml, .db).`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringP("query", "q", "", "PubMed search query")
	searchCmd.Flags().Int("max-results", pubmed.DefaultLimit, "maximum number of PubMed IDs to fetch")
	addReportFlags(searchCmd)

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query, err := readQuery(cmd, args)
	if err != nil {
		return err
	}
	rcfg, err := reportConfig(cmd)
	if err != nil {
		return err
	}

	cfg := pubmedConfig(cmd)
	client := pubmed.NewClientFromConfig(cfg)

	res, err := pipeline.Run(cmd.Context(), client, client, query, cfg.MaxResults, runLog)
	if err != nil {
		return err
	}
	return writeReport(cmd.OutOrStdout(), rcfg, res.Rows)
}
