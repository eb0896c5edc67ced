package pipeline

import (
	"fmt"
	"strings"

	"github.com/umx-tools/umx/internal/assemble"
	"github.com/umx-tools/umx/internal/combo"
	"github.com/umx-tools/umx/internal/mode"
	"github.com/umx-tools/umx/internal/requirements"
)

// AskGuidance is the first-round question text for the Ask route. The
// surrounding caller collects the answers and re-invokes with a
// terminal route.
func AskGuidance() string {
	return `# First-round questions

Please confirm:

1) Generate traditional documents first? (yes/no)
2) If yes, which ones? (prd,architecture,api,database)
3) If no, go straight to combo selection?
4) Accept the automatic combo recommendation?
5) Start with single-file mode?

Command examples:
- /umx traditional --docs prd,architecture,api,database --combo auto --mode minimal
- /umx direct --combo auto --mode single-file
`
}

// Report renders the recommendation report as markdown: input summary,
// score table, recommendation and the planned file list.
func Report(rec *requirements.Record, r *combo.Recommendation, m mode.Mode, complexity string) string {
	var b strings.Builder

	b.WriteString("# Combo Recommendation Report\n\n")

	b.WriteString("## 1. Input summary\n\n")
	fmt.Fprintf(&b, "- Project: %s\n", rec.ProjectName)
	fmt.Fprintf(&b, "- Goal: %s\n", rec.ProjectGoal)
	fmt.Fprintf(&b, "- Team size: %d\n", rec.TeamSize)
	fmt.Fprintf(&b, "- Modules: %d\n", rec.ModuleCount)
	fmt.Fprintf(&b, "- UI priority: %s\n", rec.UIPriority)
	fmt.Fprintf(&b, "- Back-end complexity: %s\n", rec.BackendComplexity)
	fmt.Fprintf(&b, "- Domain complexity: %s\n", rec.DomainComplexity)
	fmt.Fprintf(&b, "- Compliance level: %s\n", rec.ComplianceLevel)

	b.WriteString("\n## 2. Combo scores\n\n")
	b.WriteString("| Combo | Pipeline | Score |\n")
	b.WriteString("|---|---|---|\n")
	for _, code := range combo.RankScores(r.Scores) {
		info, _ := combo.Get(code)
		fmt.Fprintf(&b, "| %s | %s | %d |\n", code, info.Pipeline, r.Scores[code])
	}

	b.WriteString("\n## 3. Recommendation\n\n")
	fmt.Fprintf(&b, "- Primary combo: %s\n", r.Primary.Label())
	secondary := "none"
	if r.Secondary != nil {
		secondary = r.Secondary.Label()
	}
	fmt.Fprintf(&b, "- Secondary combo: %s\n", secondary)
	fmt.Fprintf(&b, "- Complexity: %s\n", complexity)
	fmt.Fprintf(&b, "- Doc mode: %s\n", m)
	b.WriteString("- Fixed baseline: Epic -> Feature/Story -> Core Spec\n")

	b.WriteString("\n### Why the primary combo\n\n")
	for _, reason := range r.Reasons {
		fmt.Fprintf(&b, "- %s\n", reason)
	}

	b.WriteString("\n## 4. Planned documents\n\n")
	for _, name := range assemble.PlannedFilenames(r.Primary, m) {
		fmt.Fprintf(&b, "- `vibe-docs/%s`\n", name)
	}

	b.WriteString("\n## 5. Next steps\n\n")
	b.WriteString("1. Complete the Epic/Feature/Story/Core Spec baseline first.\n")
	b.WriteString("2. Then run the combo-layer documents and the M0 implementation.\n")
	b.WriteString("3. Update the combo decision and milestones after every change.\n")

	return b.String()
}
