package mode

import "fmt"

// Mode is the documentation granularity tier. Tiers are ordered: each
// tier carries at least the logical content of the tier below it.
type Mode string

const (
	// Unspecified is the sentinel for "not chosen".
	Unspecified Mode = ""

	// Auto defers to the combo's canonical starting mode.
	Auto Mode = "auto"

	SingleFile Mode = "single-file"
	Minimal    Mode = "minimal"
	Standard   Mode = "standard"
	Full       Mode = "full"
)

var aliases = map[string]Mode{
	"single":      SingleFile,
	"single_file": SingleFile,
	"single-file": SingleFile,
	"minimal":     Minimal,
	"standard":    Standard,
	"full":        Full,
	"auto":        Auto,
}

// Parse normalises a raw mode string, accepting the single-file aliases.
func Parse(raw string) (Mode, error) {
	if m, ok := aliases[raw]; ok {
		return m, nil
	}
	return Unspecified, fmt.Errorf("invalid mode: %q (use single-file, minimal, standard, full or auto)", raw)
}

// rank orders the tiers by granularity.
var rank = map[Mode]int{
	SingleFile: 0,
	Minimal:    1,
	Standard:   2,
	Full:       3,
}

// Rank returns the tier's position in the granularity order.
func (m Mode) Rank() int {
	return rank[m]
}

// Includes reports whether m carries at least the logical content of other.
func (m Mode) Includes(other Mode) bool {
	return m.Rank() >= other.Rank()
}

// Select resolves the mode for a run. Auto (or no choice) resolves to
// the combo's canonical starting mode; an explicit choice always wins.
func Select(choice, canonical Mode) Mode {
	if choice == Unspecified || choice == Auto {
		return canonical
	}
	return choice
}
