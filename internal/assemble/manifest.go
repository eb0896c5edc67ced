package assemble

import "fmt"

// Manifest lists every file written by one successful run. It is
// produced all-or-nothing: a run that fails mid-write returns no
// manifest at all.
type Manifest struct {
	RunID string `json:"run_id"`
	Root  string `json:"root"`

	// Files holds every relative path in write order, starting with
	// route-summary.md.
	Files []string `json:"files"`

	// TraditionalFiles and VibeFiles partition the document files into
	// the two disjoint subtrees.
	TraditionalFiles []string `json:"traditional_files,omitempty"`
	VibeFiles        []string `json:"vibe_files"`
}

// WriteError reports an I/O failure during assembly. The manifest for
// the run is discarded; no partial tree is claimed as valid.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
