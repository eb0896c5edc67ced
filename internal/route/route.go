package route

import "fmt"

// Route is the top-level strategy choice for a run.
type Route string

const (
	// Unspecified is the sentinel for "no route chosen yet".
	Unspecified Route = ""

	// Ask is the initial, non-terminal route: the caller must collect
	// first-round answers before re-invoking with a terminal route.
	Ask Route = "ask"

	// TraditionalFirst produces traditional documents before the vibe pack.
	TraditionalFirst Route = "traditional-first"

	// Direct goes straight to the vibe document pack.
	Direct Route = "direct"
)

// Parse validates a raw route string.
func Parse(raw string) (Route, error) {
	switch Route(raw) {
	case Ask, TraditionalFirst, Direct:
		return Route(raw), nil
	}
	return Unspecified, fmt.Errorf("invalid route: %q (use ask, traditional-first or direct)", raw)
}

// Terminal reports whether the route proceeds to assembly.
// Ask is non-terminal; Unspecified is not a route at all.
func (r Route) Terminal() bool {
	return r == TraditionalFirst || r == Direct
}

// Resolve picks the route for a run. An explicit caller argument wins
// over the route inferred from an instruction string; with neither, the
// run starts in Ask. Within one run a terminal route never transitions
// back to Ask.
func Resolve(explicit, inferred Route) Route {
	if explicit != Unspecified {
		return explicit
	}
	if inferred != Unspecified {
		return inferred
	}
	return Ask
}

// UnresolvedError is returned when assembly is requested while the
// route is still Ask.
type UnresolvedError struct {
	Route Route
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("route is still %q: complete the first-round questions and re-run with --route traditional-first or --route direct", e.Route)
}
