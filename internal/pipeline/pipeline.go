// Package pipeline wires the components of one run in their fixed
// order: interpret the instruction and resolve the route, gate the
// requirements source, resolve combo and mode, fix the output root,
// assemble the tree.
package pipeline

import (
	"time"

	"github.com/umx-tools/umx/internal/assemble"
	"github.com/umx-tools/umx/internal/combo"
	"github.com/umx-tools/umx/internal/docset"
	"github.com/umx-tools/umx/internal/intent"
	"github.com/umx-tools/umx/internal/mode"
	"github.com/umx-tools/umx/internal/requirements"
	"github.com/umx-tools/umx/internal/route"
)

// Config is the explicit configuration for one run, constructed once at
// the boundary. No component reads the environment or global state.
type Config struct {
	InputPath  string
	OutputRoot string

	// Route is the caller-supplied route argument; Unspecified means
	// "not given", letting the instruction (or Ask) decide.
	Route route.Route

	// Combo is "auto" or one of c1..c6; empty falls back to auto.
	Combo string

	// Mode is the caller's mode choice; Unspecified/Auto defer to the
	// combo's canonical starting mode.
	Mode mode.Mode

	// Docs is the raw comma-separated traditional doc list.
	Docs string

	// Instruction is an optional command string. Its overrides win over
	// the flag values for combo, mode, docs and output; only an explicit
	// Route argument beats it.
	Instruction string

	AllowPlaceholder bool
	AllowStale       bool
	MaxInputAge      time.Duration

	// Now anchors the staleness check and the render date.
	Now time.Time

	// PrintOnly reports the plan without writing anything.
	PrintOnly bool
}

// DefaultMaxInputAge is the staleness threshold applied when the
// caller does not set one.
const DefaultMaxInputAge = 24 * time.Hour

// DefaultOutputRoot is the output root used when neither a flag nor an
// instruction override names one.
const DefaultOutputRoot = "./umx-output"

// Result is the outcome of a successful run.
type Result struct {
	Route          route.Route
	Recommendation *combo.Recommendation
	Mode           mode.Mode
	Complexity     string
	Docs           []docset.Kind
	Record         *requirements.Record

	// Manifest is nil for Ask, print-only and recommend runs.
	Manifest *assemble.Manifest

	// FellBack is true when the output landed in the fallback root.
	FellBack bool

	// AskGuidance carries the first-round question text when the route
	// is still Ask.
	AskGuidance string

	// Report is the recommendation report for print-only and recommend
	// runs.
	Report string
}

// Run executes one pipeline run. All failures surface verbatim; none
// are downgraded or retried.
func Run(cfg Config) (*Result, error) {
	if cfg.Combo == "" {
		cfg.Combo = "auto"
	}
	if cfg.MaxInputAge <= 0 {
		cfg.MaxInputAge = DefaultMaxInputAge
	}
	if cfg.Now.IsZero() {
		cfg.Now = time.Now()
	}

	// 1. Normalize intent. An unparseable instruction is fatal here,
	// before any input is read.
	var inferred intent.Intent
	if cfg.Instruction != "" {
		parsed, err := intent.Parse(cfg.Instruction)
		if err != nil {
			return nil, err
		}
		inferred = parsed
	}

	resolved := route.Resolve(cfg.Route, inferred.Route)

	// Instruction overrides win over flag values for everything except
	// the route, where an explicit argument is authoritative.
	comboChoice := cfg.Combo
	if inferred.Combo != "" {
		comboChoice = inferred.Combo
	}
	modeChoice := cfg.Mode
	if inferred.Mode != mode.Unspecified {
		modeChoice = inferred.Mode
	}
	docsChoice := cfg.Docs
	if inferred.Docs != "" {
		docsChoice = inferred.Docs
	}
	outputRoot := cfg.OutputRoot
	if inferred.Output != "" {
		outputRoot = inferred.Output
	}
	if outputRoot == "" {
		outputRoot = DefaultOutputRoot
	}
	printOnly := cfg.PrintOnly || inferred.Recommend

	// 2. Load the requirements record. A missing source is fatal; no
	// fallback content is invented.
	rec, err := requirements.Load(cfg.InputPath)
	if err != nil {
		return nil, err
	}

	result := &Result{Route: resolved, Record: rec}

	// Ask is non-terminal: hand back the first-round questions without
	// gating or assembling anything.
	if resolved == route.Ask {
		result.AskGuidance = AskGuidance()
		return result, nil
	}

	// 3. Gate the source quality and age.
	if err := requirements.CheckQuality(rec, cfg.AllowPlaceholder); err != nil {
		return nil, err
	}
	if err := requirements.CheckStaleness(cfg.InputPath, cfg.Now, cfg.MaxInputAge, nil, cfg.AllowStale); err != nil {
		return nil, err
	}

	// 4. Resolve the open choices.
	recommendation, err := combo.Recommend(rec, comboChoice)
	if err != nil {
		return nil, err
	}
	result.Recommendation = recommendation
	result.Complexity = combo.Complexity(rec)
	result.Mode = mode.Select(modeChoice, recommendation.Primary.CanonicalMode)
	result.Docs = docset.Normalize(docsChoice)

	if printOnly {
		result.Report = Report(rec, recommendation, result.Mode, result.Complexity)
		return result, nil
	}

	// 5. Fix the destination and assemble.
	root, fellBack, err := assemble.ResolveOutputRoot(outputRoot)
	if err != nil {
		return nil, err
	}
	result.FellBack = fellBack

	manifest, err := assemble.Assemble(root, assemble.Inputs{
		Record:         rec,
		Route:          resolved,
		Recommendation: recommendation,
		Mode:           result.Mode,
		Docs:           result.Docs,
		Complexity:     result.Complexity,
		Date:           cfg.Now,
	})
	if err != nil {
		return nil, err
	}
	result.Manifest = manifest
	return result, nil
}
