package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/get-papers/internal/pubmed"
	"github.com/pdiddy/get-papers/internal/report"
	"github.com/pdiddy/get-papers/internal/secrets"
	"github.com/pdiddy/get-papers/pkg/types"
)

const queryPrompt = "Enter your PubMed search query (e.g., Cancer AND 2024): "

func init() {
	viper.SetDefault("pubmed.max_results", pubmed.DefaultLimit)
	viper.SetDefault("report.format", "")
}

// bindFlags binds viper keys to the named flags of fs.
func bindFlags(fs *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := viper.BindPFlag(key, fs.Lookup(name)); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", name, err))
		}
	}
}

// pubmedConfig assembles the client configuration from flags, environment,
// config file, and .secrets/, in that order of precedence.
func pubmedConfig(cmd *cobra.Command) types.PubMedConfig {
	maxResults := viper.GetInt("pubmed.max_results")
	if f := cmd.Flags().Lookup("max-results"); f != nil && f.Changed {
		maxResults, _ = cmd.Flags().GetInt("max-results")
	}

	email, tool := secrets.Identity(loadedSecrets)
	return types.PubMedConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("pubmed.timeout"),
			UserAgent: viper.GetString("pubmed.user_agent"),
		},
		SearchURL:  viper.GetString("pubmed.search_url"),
		FetchURL:   viper.GetString("pubmed.fetch_url"),
		Email:      firstNonEmpty(viper.GetString("pubmed.email"), email),
		Tool:       firstNonEmpty(viper.GetString("pubmed.tool"), tool),
		MaxResults: maxResults,
	}
}

// reportConfig reads --file and --format, falling back to the report.format
// config key, and resolves the output format.
func reportConfig(cmd *cobra.Command) (types.ReportConfig, error) {
	file, _ := cmd.Flags().GetString("file")
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = viper.GetString("report.format")
	}
	return report.Resolve(types.ReportConfig{
		Format: types.ReportFormat(strings.ToLower(format)),
		Output: file,
	})
}

// readQuery takes the query from --query, then from positional arguments,
// and prompts on stdin when neither is given. The query is not validated;
// PubMed decides what an empty or odd query means.
func readQuery(cmd *cobra.Command, args []string) (string, error) {
	q, _ := cmd.Flags().GetString("query")
	if q != "" || cmd.Flags().Changed("query") {
		return q, nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	fmt.Fprint(cmd.ErrOrStderr(), queryPrompt)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading query: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// writeReport prints rows to w, or writes them to cfg.Output and reports
// where they went.
func writeReport(w io.Writer, cfg types.ReportConfig, rows []types.PaperRow) error {
	if len(rows) == 0 {
		fmt.Fprintln(w, report.NoResults)
		return nil
	}
	if cfg.Output == "" {
		return report.Write(w, cfg.Format, rows)
	}
	if err := report.WriteFile(cfg, rows); err != nil {
		return err
	}
	fmt.Fprintf(w, "Results saved to: %s\n", cfg.Output)
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// addReportFlags registers the output flags shared by search and fetch.
func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "write results to this file (.csv, .json, .yaml, .db); default prints a table")
	cmd.Flags().String("format", "", "output format: table, csv, json, yaml, sqlite (default: from --file extension)")
}
