package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/get-papers/internal/pubmed"
)

var idsCmd = &cobra.Command{
	Use:   "ids [query]",
	Short: "Print the PubMed IDs matching a query",
	Long: `Ids runs only the ESearch step and prints the matching PubMed IDs, one
per line, in PubMed's order. Use it to check a query before fetching records,
or pipe the output into fetch.`,
	RunE: runIDs,
}

func init() {
	idsCmd.Flags().StringP("query", "q", "", "PubMed search query")
	idsCmd.Flags().Int("max-results", pubmed.DefaultLimit, "maximum number of PubMed IDs to return")
	idsCmd.Flags().Bool("json", false, "output the IDs and search metadata as JSON")

	rootCmd.AddCommand(idsCmd)
}

func runIDs(cmd *cobra.Command, args []string) error {
	query, err := readQuery(cmd, args)
	if err != nil {
		return err
	}

	cfg := pubmedConfig(cmd)
	client := pubmed.NewClientFromConfig(cfg)

	res, err := client.Search(cmd.Context(), query, cfg.MaxResults)
	if err != nil {
		return err
	}
	runLog.Debug("search complete",
		"count", res.Count,
		"returned", len(res.IDs),
		"translation", res.QueryTranslation)
	if res.Warning != "" {
		runLog.Warn("PubMed reported a query problem", "error", res.Warning)
	}

	out := cmd.OutOrStdout()
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Count            int      `json:"count"`
			QueryTranslation string   `json:"query_translation"`
			IDs              []string `json:"ids"`
		}{res.Count, res.QueryTranslation, res.IDs})
	}

	for _, id := range res.IDs {
		fmt.Fprintln(out, id)
	}
	return nil
}
