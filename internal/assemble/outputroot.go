package assemble

import (
	"fmt"
	"os"
	"path/filepath"
)

// fallbackRoot is the single alternate output root used when the
// requested root is not writable.
func fallbackRoot() string {
	return filepath.Join(os.TempDir(), "umx-tools", "umx-output")
}

// probeName is the marker file used to test writability.
const probeName = ".umx-write-test"

// ResolveOutputRoot picks the output root for a run. It tries the
// requested root first and the fixed temp-directory fallback second;
// no other candidate is ever chosen. Returns the usable root and
// whether the fallback was taken.
func ResolveOutputRoot(requested string) (string, bool, error) {
	candidates := []string{requested, fallbackRoot()}

	for i, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if err := probeWritable(candidate); err != nil {
			continue
		}
		return candidate, i > 0, nil
	}

	return "", false, fmt.Errorf("no writable output root: tried %q and %q; check filesystem permissions", requested, fallbackRoot())
}

func probeWritable(root string) error {
	if err := os.MkdirAll(root, 0755); err != nil {
		return err
	}
	probe := filepath.Join(root, probeName)
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		return err
	}
	return os.Remove(probe)
}
