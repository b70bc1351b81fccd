package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/get-papers/internal/affiliation"
)

// --- classify subcommand ---

var classifyCmd = &cobra.Command{
	Use:   "classify <affiliation>...",
	Short: "Classify affiliation strings as academic or non-academic",
	Long: `Classify applies the affiliation heuristic to each argument and prints
"non-academic" or "academic" followed by the affiliation. No network access.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, a := range args {
			label := "academic"
			if affiliation.IsNonAcademic(a) {
				label = "non-academic"
			}
			fmt.Fprintf(out, "%-12s  %s\n", label, a)
		}
		return nil
	},
}

// --- markers subcommand ---

var markersCmd = &cobra.Command{
	Use:   "markers",
	Short: "Print the keyword sets used to classify affiliations",
	RunE: func(cmd *cobra.Command, args []string) error {
		commercial := affiliation.CommercialMarkers()
		academic := affiliation.AcademicMarkers()
		out := cmd.OutOrStdout()

		if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
			enc := yaml.NewEncoder(out)
			defer enc.Close()
			return enc.Encode(map[string][]string{
				"commercial": commercial,
				"academic":   academic,
			})
		}

		fmt.Fprintf(out, "commercial: %v\n", commercial)
		fmt.Fprintf(out, "academic:   %v\n", academic)
		return nil
	},
}

func init() {
	markersCmd.Flags().Bool("yaml", false, "output the marker sets as YAML")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(markersCmd)
}
