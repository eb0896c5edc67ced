package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/umx-tools/umx/internal/assemble"
	"github.com/umx-tools/umx/internal/combo"
	"github.com/umx-tools/umx/internal/config"
	"github.com/umx-tools/umx/internal/intent"
	"github.com/umx-tools/umx/internal/mode"
	"github.com/umx-tools/umx/internal/pipeline"
	"github.com/umx-tools/umx/internal/printer"
	"github.com/umx-tools/umx/internal/requirements"
	"github.com/umx-tools/umx/internal/route"
)

var (
	planInput            string
	planOutput           string
	planRoute            string
	planCombo            string
	planMode             string
	planDocs             string
	planInstruction      string
	planAllowPlaceholder bool
	planAllowStale       bool
	planMaxInputAge      time.Duration
	planPrintOnly        bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Run the pipeline and assemble the document pack",
	Long: `Run the full pipeline: interpret the instruction, resolve the route,
gate the requirements record, recommend a combo, pick the doc mode and
assemble the output tree.

The ask route is non-terminal: it prints the first-round questions and
writes nothing. Re-run with --route traditional-first or --route direct
(or an instruction like "/umx accept") to assemble documents.

Examples:
  # Fast path: accept the recommendation, single-file pack
  umx plan --input requirements.json --command "/umx accept"

  # Traditional docs first, then the minimal vibe pack
  umx plan --input requirements.json --route traditional-first --docs prd,api --mode minimal

  # Report the plan without writing anything
  umx plan --input requirements.json --route direct --print-only`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&planInput, "input", "i", "", "Path to the requirements JSON or YAML file (required)")
	planCmd.Flags().StringVarP(&planOutput, "output", "o", pipeline.DefaultOutputRoot, "Output root directory")
	planCmd.Flags().StringVar(&planRoute, "route", "", "Route: ask, traditional-first or direct")
	planCmd.Flags().StringVar(&planCombo, "combo", "auto", "Combo: auto or c1..c6")
	planCmd.Flags().StringVar(&planMode, "mode", "auto", "Mode: auto, single-file, minimal, standard or full")
	planCmd.Flags().StringVar(&planDocs, "docs", "", "Traditional docs, comma list over prd,architecture,api,database")
	planCmd.Flags().StringVarP(&planInstruction, "command", "c", "", "Instruction string, e.g. \"/umx accept\"")
	planCmd.Flags().BoolVar(&planAllowPlaceholder, "allow-placeholder", false, "Allow placeholder values in required fields (draft rehearsal only)")
	planCmd.Flags().BoolVar(&planAllowStale, "allow-stale", false, "Skip the staleness check on temporary inputs")
	planCmd.Flags().DurationVar(&planMaxInputAge, "max-input-age", 0, "Staleness threshold for inputs under the temp directory (default 24h)")
	planCmd.Flags().BoolVar(&planPrintOnly, "print-only", false, "Report the plan without writing files")
	planCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadOptional(config.DefaultFile)
	if err != nil {
		return printer.Error(
			"invalid umx.yml",
			err.Error(),
			[]string{"Fix the config file or remove it; flags can supply every value."},
		)
	}

	cfg := pipeline.Config{
		InputPath:        planInput,
		Combo:            strings.ToLower(planCombo),
		Docs:             planDocs,
		Instruction:      planInstruction,
		AllowPlaceholder: planAllowPlaceholder,
		AllowStale:       planAllowStale,
		MaxInputAge:      planMaxInputAge,
		PrintOnly:        planPrintOnly,
	}

	// An --output flag wins over umx.yml. With neither set the root is
	// left empty so an instruction "--output" override can take effect
	// before the pipeline's built-in default applies.
	if cmd.Flags().Changed("output") {
		cfg.OutputRoot = planOutput
	} else if fileCfg.OutputRoot != "" {
		cfg.OutputRoot = fileCfg.OutputRoot
	}
	if cfg.MaxInputAge == 0 {
		cfg.MaxInputAge = fileCfg.MaxInputAgeDuration()
	}
	if cfg.Docs == "" {
		cfg.Docs = fileCfg.TraditionalDocs
	}

	if cmd.Flags().Changed("route") {
		r, err := route.Parse(strings.ToLower(planRoute))
		if err != nil {
			return printer.Error("invalid --route", err.Error(), nil)
		}
		cfg.Route = r
	}
	if cmd.Flags().Changed("mode") {
		m, err := mode.Parse(strings.ToLower(planMode))
		if err != nil {
			return printer.Error("invalid --mode", err.Error(), nil)
		}
		cfg.Mode = m
	}
	if cfg.Combo != "auto" && !combo.Valid(cfg.Combo) {
		return printer.Error(
			"invalid --combo",
			fmt.Sprintf("unknown combo %q", cfg.Combo),
			[]string{"Use auto or one of c1..c6."},
		)
	}

	result, err := pipeline.Run(cfg)
	if err != nil {
		return planFailure(err)
	}

	if result.AskGuidance != "" {
		printer.Printf("%s", result.AskGuidance)
		return nil
	}

	if result.Report != "" {
		printer.Printf("%s", result.Report)
		return nil
	}

	if result.FellBack {
		printer.Warning("output path not writable, fell back to %s\n", result.Manifest.Root)
	}

	printer.Success("Generated: %s\n", result.Manifest.Root)
	printer.Info("Route: %s\n", result.Route)
	printer.Info("Primary combo: %s\n", result.Recommendation.Primary.Label())
	secondary := "none"
	if result.Recommendation.Secondary != nil {
		secondary = result.Recommendation.Secondary.Label()
	}
	printer.Info("Secondary combo: %s\n", secondary)
	printer.Info("Complexity: %s\n", result.Complexity)
	printer.Info("Doc mode: %s\n", result.Mode)
	printer.Info("Baseline: 00-epic-map.md -> 01-feature-story-map.md -> 02-core-spec.md\n")
	printer.Info("Files: %d\n", len(result.Manifest.Files))
	for _, file := range result.Manifest.Files {
		printer.Info("  %s\n", file)
	}
	return nil
}

// planFailure maps pipeline errors to structured diagnostics naming
// the offending input and the remedy.
func planFailure(err error) error {
	var notFound *requirements.NotFoundError
	var placeholder *requirements.PlaceholderError
	var stale *requirements.StaleError
	var unknown *intent.UnknownCommandError
	var unresolved *route.UnresolvedError
	var write *assemble.WriteError

	switch {
	case errors.As(err, &notFound):
		return printer.Error(
			"requirements file not found",
			fmt.Sprintf("No file at %s.", notFound.Path),
			[]string{"Check the --input path; no fallback content is invented for a missing source."},
		)
	case errors.As(err, &placeholder):
		var lines []string
		for _, issue := range placeholder.Issues {
			lines = append(lines, fmt.Sprintf("  - %s: %s", issue.Field, issue.Reason))
		}
		return printer.Error(
			"input quality check failed",
			"Complete concrete requirements before generating docs:\n"+strings.Join(lines, "\n"),
			[]string{
				"Fill in the named fields with real project content.",
				"Use --allow-placeholder only for temporary drafts.",
			},
		)
	case errors.As(err, &stale):
		return printer.Error(
			"requirements file is stale",
			fmt.Sprintf("%s is %s old; inputs under the temp directory expire after %s.",
				stale.Path, stale.Age.Round(time.Second), stale.MaxAge),
			[]string{
				"Regenerate the requirements file, or move it into the project.",
				"Use --allow-stale to override.",
			},
		)
	case errors.As(err, &unknown):
		return printer.Error(
			"unknown command",
			fmt.Sprintf("Could not interpret %q; guessing an intent is not allowed.", unknown.Input),
			[]string{"Use /umx start, /umx traditional, /umx direct, /umx accept or /umx recommend."},
		)
	case errors.As(err, &unresolved):
		return printer.Error(
			"route not resolved",
			"Assembly was requested while the route is still ask.",
			[]string{"Answer the first-round questions, then re-run with --route traditional-first or --route direct."},
		)
	case errors.As(err, &write):
		return printer.Error(
			"write failure during assembly",
			err.Error(),
			[]string{"Check filesystem permissions on the output root; the run produced no manifest."},
		)
	}
	return err
}
