package combo

import (
	"fmt"

	"github.com/umx-tools/umx/internal/requirements"
)

// secondaryGap is the maximum score distance at which the runner-up is
// still worth recommending alongside the primary.
const secondaryGap = 2

// Score computes the heuristic score of every combo for a record. The
// function is pure: identical records always produce identical scores.
func Score(rec *requirements.Record) map[string]int {
	team := rec.TeamSize
	modules := rec.ModuleCount
	ui := rec.UIPriority.Rank()
	backend := rec.BackendComplexity.Rank()
	domain := rec.DomainComplexity.Rank()
	compliance := rec.ComplianceLevel.Rank()
	design := rec.DesignSource
	separation := rec.FrontendBackendSeparation
	fast := rec.NeedFastValidation
	speed := rec.IterationSpeed.Rank()

	scores := map[string]int{}
	for _, code := range Codes {
		scores[code] = 2
	}

	// c1: requirement canvas, small fast starts.
	if team <= 2 {
		scores["c1"] += 2
	}
	if modules <= 3 {
		scores["c1"] += 2
	}
	if fast {
		scores["c1"] += 2
	}
	if design == "none" || design == "wireframe" {
		scores["c1"]++
	}
	if domain < 1 {
		scores["c1"]++
	}
	if compliance >= 1 {
		scores["c1"]--
	}

	// c2: story mapping, steady team iteration.
	if team >= 2 && team <= 5 {
		scores["c2"] += 2
	}
	if modules >= 3 && modules <= 8 {
		scores["c2"] += 2
	}
	if speed >= 1 {
		scores["c2"] += 2
	}
	if domain >= 1 {
		scores["c2"]++
	}
	if fast {
		scores["c2"]++
	}

	// c3: contracts first when interfaces dominate the cost.
	if separation {
		scores["c3"] += 3
	}
	if backend >= 1 {
		scores["c3"] += 2
	}
	if modules >= 4 {
		scores["c3"] += 2
	}
	if compliance >= 1 {
		scores["c3"]++
	}

	// c4: design driven.
	if design == "figma" {
		scores["c4"] += 4
	}
	if ui == 2 {
		scores["c4"] += 3
	}
	if fast {
		scores["c4"]++
	}
	if domain == 2 {
		scores["c4"]--
	}

	// c5: lean MVP validation.
	if fast {
		scores["c5"] += 3
	}
	if team <= 3 {
		scores["c5"] += 2
	}
	if speed == 2 {
		scores["c5"] += 2
	}
	if modules <= 5 {
		scores["c5"]++
	}
	if domain == 2 {
		scores["c5"]--
	}

	// c6: domain boundaries for complex or governed systems.
	if domain == 2 {
		scores["c6"] += 4
	}
	if compliance >= 1 {
		scores["c6"] += 2
	}
	if team >= 5 {
		scores["c6"] += 2
	}
	if modules >= 6 {
		scores["c6"] += 2
	}
	if fast {
		scores["c6"]--
	}

	return scores
}

// Recommendation is the outcome of combo selection for one run.
type Recommendation struct {
	Primary   *Info
	Secondary *Info // nil when no close runner-up
	Scores    map[string]int
	Reasons   []string
}

// Recommend selects the primary and optional secondary combo. An
// explicit choice (c1..c6) passes through unchanged with the auto
// winner surfaced as secondary context; "auto" picks the top scorer,
// with the runner-up as secondary when it is within secondaryGap
// points. Ties always break by the fixed c1 < c2 < ... < c6 order.
func Recommend(rec *requirements.Record, choice string) (*Recommendation, error) {
	if choice != "auto" && !Valid(choice) {
		return nil, fmt.Errorf("invalid combo: %q (use auto or c1..c6)", choice)
	}

	scores := Score(rec)
	ordered := RankScores(scores)

	var primaryCode, secondaryCode string
	if choice != "auto" {
		primaryCode = choice
		if ordered[0] != choice {
			secondaryCode = ordered[0]
		} else if len(ordered) > 1 {
			secondaryCode = ordered[1]
		}
	} else {
		primaryCode = ordered[0]
		if len(ordered) > 1 && scores[ordered[0]]-scores[ordered[1]] <= secondaryGap {
			secondaryCode = ordered[1]
		}
	}

	primary, err := Get(primaryCode)
	if err != nil {
		return nil, err
	}
	rec2 := &Recommendation{
		Primary: primary,
		Scores:  scores,
		Reasons: Reasons(rec, primaryCode),
	}
	if secondaryCode != "" {
		secondary, err := Get(secondaryCode)
		if err != nil {
			return nil, err
		}
		rec2.Secondary = secondary
	}
	return rec2, nil
}

// Complexity grades the record S/M/L/XL for reporting.
func Complexity(rec *requirements.Record) string {
	score := 0

	switch {
	case rec.TeamSize <= 2:
	case rec.TeamSize <= 5:
		score++
	case rec.TeamSize <= 8:
		score += 2
	default:
		score += 3
	}

	switch {
	case rec.ModuleCount <= 3:
	case rec.ModuleCount <= 6:
		score++
	case rec.ModuleCount <= 10:
		score += 2
	default:
		score += 3
	}

	score += rec.DomainComplexity.Rank() + rec.ComplianceLevel.Rank() + rec.BackendComplexity.Rank()
	if rec.FrontendBackendSeparation {
		score++
	}

	switch {
	case score <= 4:
		return "S"
	case score <= 7:
		return "M"
	case score <= 10:
		return "L"
	}
	return "XL"
}

// Reasons explains why a combo fits the record, always anchored on the
// shared execution baseline.
func Reasons(rec *requirements.Record, code string) []string {
	reasons := []string{"Every combo runs on the same Epic -> Feature/Story -> Core Spec execution baseline"}

	switch code {
	case "c1":
		if rec.TeamSize <= 2 {
			reasons = append(reasons, "Small team: the requirement canvas and prototype keep communication cost low")
		}
		if rec.ModuleCount <= 3 {
			reasons = append(reasons, "Few modules: well suited to shipping a runnable version quickly")
		}
	case "c2":
		reasons = append(reasons, "Continuous iteration ahead: story slices make delivery steadier")
		if rec.ModuleCount >= 3 {
			reasons = append(reasons, "Mid-sized module count fits batch-by-iteration delivery")
		}
	case "c3":
		reasons = append(reasons, "Clear front/back-end or interface collaboration needs: contracts first is safer")
		if rec.BackendComplexity.Rank() >= 1 {
			reasons = append(reasons, "Back-end complexity is non-trivial: fixing the API early cuts integration cost")
		}
	case "c4":
		reasons = append(reasons,
			"The project leans on visuals and interaction: a design-driven path is more efficient",
			"Mapping design files to prompts avoids merely reproducing the UI")
	case "c5":
		reasons = append(reasons,
			"The goal is validation: an MVP path tests the idea at minimal cost",
			"The feedback loop drives the next iteration quickly")
	case "c6":
		reasons = append(reasons,
			"Complex domain or compliance pressure: domain boundaries first is the safer order",
			"A lean DDD skeleton reduces structural rework later")
	}

	if len(reasons) > 4 {
		reasons = reasons[:4]
	}
	return reasons
}
