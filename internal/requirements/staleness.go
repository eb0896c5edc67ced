package requirements

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// StaleError reports a requirements file under a volatile location that
// is older than the configured threshold.
type StaleError struct {
	Path   string
	Age    time.Duration
	MaxAge time.Duration
}

func (e *StaleError) Error() string {
	return fmt.Sprintf("requirements file is stale: %s is %s old (limit %s under temporary locations)",
		e.Path, e.Age.Round(time.Second), e.MaxAge)
}

// VolatilePath reports whether a path lives under the OS temporary
// directory. Files there are treated as ephemeral scratch input;
// project-relative files are intentionally reusable templates and are
// exempt from the age check.
func VolatilePath(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	tmp, err := filepath.Abs(os.TempDir())
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(tmp, abs)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// CheckStaleness rejects volatile requirements files older than maxAge,
// measured from the file's mtime against now. The volatile predicate
// decides which paths the check applies to; everything else passes
// regardless of age. Bypass skips the check unconditionally.
func CheckStaleness(path string, now time.Time, maxAge time.Duration, volatile func(string) bool, bypass bool) error {
	if bypass {
		return nil
	}
	if volatile == nil {
		volatile = VolatilePath
	}
	if !volatile(path) {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &NotFoundError{Path: path}
		}
		return fmt.Errorf("failed to stat requirements: %w", err)
	}

	age := now.Sub(info.ModTime())
	if age > maxAge {
		return &StaleError{Path: path, Age: age, MaxAge: maxAge}
	}
	return nil
}
