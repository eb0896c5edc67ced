package requirements

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAged(t *testing.T, age time.Duration) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "requirements.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))
	stamp := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, stamp, stamp))
	return path
}

func TestCheckStaleness_FreshVolatileFile(t *testing.T) {
	path := writeAged(t, time.Hour)
	err := CheckStaleness(path, time.Now(), 24*time.Hour, nil, false)
	assert.NoError(t, err)
}

func TestCheckStaleness_StaleVolatileFile(t *testing.T) {
	path := writeAged(t, 48*time.Hour)

	err := CheckStaleness(path, time.Now(), 24*time.Hour, nil, false)
	var stale *StaleError
	require.ErrorAs(t, err, &stale)
	assert.Equal(t, path, stale.Path)
	assert.Greater(t, stale.Age, 24*time.Hour)
	assert.Equal(t, 24*time.Hour, stale.MaxAge)
}

func TestCheckStaleness_PersistentPathExemptRegardlessOfAge(t *testing.T) {
	path := writeAged(t, 30*24*time.Hour)

	// A project-relative location is exempt by design: such inputs are
	// reusable templates, not scratch files.
	persistent := func(string) bool { return false }
	assert.NoError(t, CheckStaleness(path, time.Now(), time.Minute, persistent, false))
}

func TestCheckStaleness_BypassSkipsCheck(t *testing.T) {
	path := writeAged(t, 48*time.Hour)
	assert.NoError(t, CheckStaleness(path, time.Now(), 24*time.Hour, nil, true))
}

func TestCheckStaleness_MissingVolatileFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")

	err := CheckStaleness(missing, time.Now(), 24*time.Hour, nil, false)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestVolatilePath(t *testing.T) {
	assert.True(t, VolatilePath(filepath.Join(os.TempDir(), "scratch", "req.json")))
	assert.False(t, VolatilePath(filepath.Join(string(filepath.Separator), "home", "dev", "project", "req.json")))
}
