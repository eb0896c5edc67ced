// Package combo holds the fixed catalogue of process combinations and
// the deterministic recommender that scores them against a
// requirements record.
package combo

import (
	"fmt"
	"sort"

	"github.com/umx-tools/umx/internal/mode"
)

// Info describes one process combination from the fixed catalogue.
type Info struct {
	Code     string
	Name     string
	Pipeline string
	Fit      string
	Focus    string

	// CanonicalMode is the recommended starting documentation tier,
	// used when the mode choice is auto.
	CanonicalMode mode.Mode

	// ExtensionDocs are the combo-specific files added to the vibe tree
	// for the multi-file tiers, as (filename, title) pairs.
	ExtensionDocs []ExtensionDoc
}

// ExtensionDoc names one combo-specific extension file.
type ExtensionDoc struct {
	Filename string
	Title    string
}

// Label formats the combo as "code name" for reports.
func (c *Info) Label() string {
	return c.Code + " " + c.Name
}

// Codes lists every combo code in the fixed priority order used for
// tie-breaking.
var Codes = []string{"c1", "c2", "c3", "c4", "c5", "c6"}

var catalogue = map[string]*Info{
	"c1": {
		Code:          "c1",
		Name:          "Requirement canvas driven",
		Pipeline:      "Requirement canvas -> prototype -> AI generation",
		Fit:           "personal tools, lightweight projects, fast start",
		Focus:         "Use the requirement canvas and prototype to clarify scope so the fast start stays on track.",
		CanonicalMode: mode.SingleFile,
		ExtensionDocs: []ExtensionDoc{
			{"30-requirement-canvas.md", "Requirement Canvas"},
			{"31-prototype-brief.md", "Prototype Brief"},
		},
	},
	"c2": {
		Code:          "c2",
		Name:          "Story mapping driven",
		Pipeline:      "Story mapping -> task breakdown -> AI iteration",
		Fit:           "small to mid projects, continuous iteration, multi-person collaboration",
		Focus:         "Slice work by story so every iteration delivers a verifiable result.",
		CanonicalMode: mode.Minimal,
		ExtensionDocs: []ExtensionDoc{
			{"30-iteration-slice.md", "Iteration Slice Plan"},
			{"31-iteration-backlog.md", "Iteration Backlog"},
		},
	},
	"c3": {
		Code:          "c3",
		Name:          "Scenario and contract driven",
		Pipeline:      "Scenario driven (SDD) -> interface contracts -> parallel front/back-end",
		Fit:           "front/back-end separation, interface collaboration, high integration cost",
		Focus:         "Fix scenarios and interface contracts first to keep integration cost under control.",
		CanonicalMode: mode.Standard,
		ExtensionDocs: []ExtensionDoc{
			{"30-scenario-list.md", "Scenario List"},
			{"31-api-contract-priority.md", "API Contract Priority"},
			{"32-data-model.md", "Data Model"},
		},
	},
	"c4": {
		Code:          "c4",
		Name:          "Design driven",
		Pipeline:      "Figma -> prompt -> AI full stack",
		Fit:           "UI and interaction oriented projects, design first",
		Focus:         "Align the design files with implementation constraints instead of only reproducing visuals.",
		CanonicalMode: mode.Minimal,
		ExtensionDocs: []ExtensionDoc{
			{"30-ui-flow-map.md", "UI Flow and Design Constraints"},
			{"31-figma-to-prompt-map.md", "Figma to Prompt Map"},
		},
	},
	"c5": {
		Code:          "c5",
		Name:          "Lean MVP driven",
		Pipeline:      "Lean MVP -> feedback -> fast AI iteration",
		Fit:           "idea validation, rapid trial and error",
		Focus:         "Run the MVP hypothesis and feedback loop to validate value at the lowest cost.",
		CanonicalMode: mode.SingleFile,
		ExtensionDocs: []ExtensionDoc{
			{"30-mvp-hypothesis.md", "MVP Hypothesis"},
			{"31-feedback-loop.md", "Feedback Loop"},
		},
	},
	"c6": {
		Code:          "c6",
		Name:          "Lean DDD driven",
		Pipeline:      "Lean DDD -> skeleton -> AI fill-in",
		Fit:           "complex domains, team delivery, long-term maintenance",
		Focus:         "Draw the domain boundaries first so the system stays extensible and governable.",
		CanonicalMode: mode.Full,
		ExtensionDocs: []ExtensionDoc{
			{"30-domain-map.md", "Domain Map"},
			{"31-ubiquitous-language.md", "Ubiquitous Language"},
			{"32-service-boundary.md", "Application Service Boundary"},
		},
	},
}

// Get returns the catalogue entry for a combo code.
func Get(code string) (*Info, error) {
	if info, ok := catalogue[code]; ok {
		return info, nil
	}
	return nil, fmt.Errorf("invalid combo: %q (use auto or c1..c6)", code)
}

// Valid reports whether code names a catalogue combo.
func Valid(code string) bool {
	_, ok := catalogue[code]
	return ok
}

// RankScores orders (code, score) pairs by descending score with the
// fixed c1 < c2 < ... < c6 priority as tie-break.
func RankScores(scores map[string]int) []string {
	ordered := append([]string(nil), Codes...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if scores[ordered[i]] != scores[ordered[j]] {
			return scores[ordered[i]] > scores[ordered[j]]
		}
		return ordered[i] < ordered[j]
	})
	return ordered
}
