// Package docset normalises the requested set of traditional document
// kinds. The set is unique and always reported in canonical order.
package docset

import "strings"

// Kind is a traditional document kind.
type Kind string

const (
	PRD          Kind = "prd"
	Architecture Kind = "architecture"
	API          Kind = "api"
	Database     Kind = "database"
)

// All lists every kind in canonical order.
var All = []Kind{PRD, Architecture, API, Database}

var alias = map[string]Kind{
	"prd":          PRD,
	"product":      PRD,
	"architecture": Architecture,
	"arch":         Architecture,
	"api":          API,
	"database":     Database,
	"db":           Database,
}

// Normalize parses a comma-separated doc list into a unique, canonically
// ordered set. Unknown entries are dropped; an empty or fully-unknown
// list means "all kinds".
func Normalize(raw string) []Kind {
	picked := map[Kind]bool{}
	for _, item := range strings.Split(raw, ",") {
		item = strings.ToLower(strings.TrimSpace(item))
		if item == "" {
			continue
		}
		if kind, ok := alias[item]; ok {
			picked[kind] = true
		}
	}

	if len(picked) == 0 {
		return append([]Kind(nil), All...)
	}

	set := make([]Kind, 0, len(picked))
	for _, kind := range All {
		if picked[kind] {
			set = append(set, kind)
		}
	}
	return set
}
