// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the get-papers-list CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/get-papers/internal/logger"
	"github.com/pdiddy/get-papers/internal/pubmed"
	"github.com/pdiddy/get-papers/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds identification values loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// runLog is the logger for the current invocation, set in PersistentPreRunE.
var runLog = logger.Discard()

// rootCmd is the base command for the get-papers-list CLI.
var rootCmd = &cobra.Command{
	Use:   "get-papers-list",
	Short: "Find PubMed papers with authors from pharmaceutical or biotech companies",
	Long: `get-papers-list searches PubMed, fetches the matching records, and keeps
the papers where at least one author is affiliated with a company rather than
a university, hospital, or institute. The report lists those authors, their
company affiliations, and a contact email when one appears in an affiliation.

Affiliations are classified by literal keyword matching: company markers such
as "Inc", "Ltd", or "Pharma" count only when no academic marker such as
"University" or "Hospital" is present.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		runLog = logger.New(cmd.ErrOrStderr(), viper.GetString("log_level"), viper.GetBool("debug"))

		s, err := secrets.Load(viper.GetString("secrets_dir"), runLog)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			runLog.Debug("loaded secrets", "keys", keys)
		}
		return nil
	},
}

func init() {
	// Load .env file if present (for GET_PAPERS_* variables).
	_ = godotenv.Load()

	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./get-papers.yaml or ~/.config/get-papers/get-papers.yaml)")
	pf.BoolP("debug", "d", false, "print debug information during execution")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("secrets-dir", ".secrets", "directory holding ncbi-email and ncbi-tool files")
	pf.Duration("timeout", pubmed.DefaultTimeout, "HTTP request timeout")
	pf.String("user-agent", pubmed.DefaultUserAgent, "User-Agent header for E-utilities requests")
	pf.String("email", "", "contact email sent to NCBI (default: .secrets/ncbi-email)")
	pf.String("tool", "", "tool name sent to NCBI (default: .secrets/ncbi-tool)")
	pf.String("search-url", pubmed.SearchURL, "ESearch endpoint")
	pf.String("fetch-url", pubmed.FetchURL, "EFetch endpoint")
	pf.MarkHidden("search-url")
	pf.MarkHidden("fetch-url")

	bindFlags(pf, map[string]string{
		"debug":             "debug",
		"log_level":         "log-level",
		"secrets_dir":       "secrets-dir",
		"pubmed.timeout":    "timeout",
		"pubmed.user_agent": "user-agent",
		"pubmed.email":      "email",
		"pubmed.tool":       "tool",
		"pubmed.search_url": "search-url",
		"pubmed.fetch_url":  "fetch-url",
	})
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("get-papers")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "get-papers"))
		}
	}

	viper.SetEnvPrefix("GET_PAPERS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
