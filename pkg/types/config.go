package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "get-papers/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// PubMedConfig holds settings for the E-utilities client.
type PubMedConfig struct {
	HTTPConfig `yaml:",inline"`

	// SearchURL is the ESearch endpoint.
	SearchURL string `json:"search_url" yaml:"search_url"`

	// FetchURL is the EFetch endpoint.
	FetchURL string `json:"fetch_url" yaml:"fetch_url"`

	// Email and Tool identify the caller to NCBI. Both are optional.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
	Tool  string `json:"tool,omitempty" yaml:"tool,omitempty"`

	// MaxResults caps the number of identifiers requested (default 100).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// ReportFormat selects how PaperRows are written.
type ReportFormat string

const (
	FormatTable  ReportFormat = "table"
	FormatCSV    ReportFormat = "csv"
	FormatJSON   ReportFormat = "json"
	FormatYAML   ReportFormat = "yaml"
	FormatSQLite ReportFormat = "sqlite"
)

// ReportConfig holds settings for writing the report.
type ReportConfig struct {
	// Format selects the output encoding. Empty means infer from Output.
	Format ReportFormat `json:"format" yaml:"format"`

	// Output is the destination file. Empty means stdout.
	Output string `json:"output" yaml:"output"`
}
