package commands

import (
	"encoding/json"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/umx-tools/umx/internal/assemble"
	"github.com/umx-tools/umx/internal/mode"
	"github.com/umx-tools/umx/internal/pipeline"
	"github.com/umx-tools/umx/internal/printer"
	"github.com/umx-tools/umx/internal/route"
)

var (
	recommendInput            string
	recommendCombo            string
	recommendMode             string
	recommendJSON             bool
	recommendPlain            bool
	recommendAllowPlaceholder bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print the combo recommendation without writing files",
	Long: `Score the fixed combo catalogue against a requirements record and
print the recommendation report: score table, primary and secondary
combo, complexity grade and the planned file list.

Nothing is written. Use --json for machine-readable output.`,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringVarP(&recommendInput, "input", "i", "", "Path to the requirements JSON or YAML file (required)")
	recommendCmd.Flags().StringVar(&recommendCombo, "combo", "auto", "Combo: auto or c1..c6")
	recommendCmd.Flags().StringVar(&recommendMode, "mode", "auto", "Mode: auto, single-file, minimal, standard or full")
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "Output in JSON format")
	recommendCmd.Flags().BoolVar(&recommendPlain, "plain", false, "Print raw markdown without terminal rendering")
	recommendCmd.Flags().BoolVar(&recommendAllowPlaceholder, "allow-placeholder", false, "Allow placeholder values in required fields")
	recommendCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	cfg := pipeline.Config{
		InputPath:        recommendInput,
		Route:            route.Direct,
		Combo:            strings.ToLower(recommendCombo),
		AllowPlaceholder: recommendAllowPlaceholder,
		AllowStale:       true, // read-only report; age does not gate it
		PrintOnly:        true,
	}
	if cmd.Flags().Changed("mode") {
		m, err := mode.Parse(strings.ToLower(recommendMode))
		if err != nil {
			return printer.Error("invalid --mode", err.Error(), nil)
		}
		cfg.Mode = m
	}

	result, err := pipeline.Run(cfg)
	if err != nil {
		return planFailure(err)
	}

	if recommendJSON {
		return printJSON(result)
	}

	if recommendPlain {
		printer.Printf("%s", result.Report)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		// Rendering is cosmetic; fall back to raw markdown.
		printer.Printf("%s", result.Report)
		return nil
	}
	rendered, err := renderer.Render(result.Report)
	if err != nil {
		printer.Printf("%s", result.Report)
		return nil
	}
	printer.Printf("%s", rendered)
	return nil
}

type recommendOutput struct {
	Primary    string         `json:"primary"`
	Secondary  string         `json:"secondary,omitempty"`
	Mode       string         `json:"mode"`
	Complexity string         `json:"complexity"`
	Scores     map[string]int `json:"scores"`
	Reasons    []string       `json:"reasons"`
	VibeDocs   []string       `json:"vibe_docs"`
}

func printJSON(result *pipeline.Result) error {
	out := recommendOutput{
		Primary:    result.Recommendation.Primary.Code,
		Mode:       string(result.Mode),
		Complexity: result.Complexity,
		Scores:     result.Recommendation.Scores,
		Reasons:    result.Recommendation.Reasons,
		VibeDocs:   assemble.PlannedFilenames(result.Recommendation.Primary, result.Mode),
	}
	if result.Recommendation.Secondary != nil {
		out.Secondary = result.Recommendation.Secondary.Code
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	printer.Println(string(data))
	return nil
}
