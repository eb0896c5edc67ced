package assemble

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umx-tools/umx/internal/combo"
	"github.com/umx-tools/umx/internal/docset"
	"github.com/umx-tools/umx/internal/mode"
	"github.com/umx-tools/umx/internal/requirements"
	"github.com/umx-tools/umx/internal/route"
)

func testInputs(t *testing.T, r route.Route, m mode.Mode, docs []docset.Kind) Inputs {
	t.Helper()
	rec := &requirements.Record{
		ProjectName:        "Team Portal",
		ProjectGoal:        "Ship the internal team portal MVP",
		TargetUsers:        "Internal operations staff",
		TeamSize:           2,
		ModuleCount:        3,
		UIPriority:         requirements.LevelMedium,
		BackendComplexity:  requirements.LevelMedium,
		DomainComplexity:   requirements.LevelLow,
		ComplianceLevel:    requirements.LevelLow,
		DesignSource:       "none",
		NeedFastValidation: true,
		IterationSpeed:     requirements.SpeedNormal,
	}
	recommendation, err := combo.Recommend(rec, "auto")
	require.NoError(t, err)

	return Inputs{
		Record:         rec,
		Route:          r,
		Recommendation: recommendation,
		Mode:           m,
		Docs:           docs,
		Complexity:     combo.Complexity(rec),
		Date:           time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
}

func TestAssemble_SingleFileDirect(t *testing.T) {
	root := t.TempDir()
	in := testInputs(t, route.Direct, mode.SingleFile, nil)

	manifest, err := Assemble(root, in)
	require.NoError(t, err)

	// Exactly the summary and the single-file pack; no traditional tree.
	assert.Equal(t, []string{
		"route-summary.md",
		filepath.Join("vibe-docs", "00-single-file-pack.md"),
	}, manifest.Files)
	assert.Empty(t, manifest.TraditionalFiles)

	assert.FileExists(t, filepath.Join(root, "route-summary.md"))
	assert.FileExists(t, filepath.Join(root, "vibe-docs", "00-single-file-pack.md"))
	assert.NoDirExists(t, filepath.Join(root, "traditional-docs"))

	body, err := os.ReadFile(filepath.Join(root, "vibe-docs", "00-single-file-pack.md"))
	require.NoError(t, err)
	assert.Contains(t, string(body), "Team Portal")
	assert.Contains(t, string(body), "Epic -> Feature/Story -> Core Spec")
}

func TestAssemble_TraditionalFirstMinimal(t *testing.T) {
	root := t.TempDir()
	in := testInputs(t, route.TraditionalFirst, mode.Minimal, []docset.Kind{docset.PRD, docset.API})

	manifest, err := Assemble(root, in)
	require.NoError(t, err)

	// Requested traditional docs present, the others absent.
	assert.FileExists(t, filepath.Join(root, "traditional-docs", "00-traditional-index.md"))
	assert.FileExists(t, filepath.Join(root, "traditional-docs", "01-prd-lite.md"))
	assert.FileExists(t, filepath.Join(root, "traditional-docs", "03-api-spec.md"))
	assert.NoFileExists(t, filepath.Join(root, "traditional-docs", "02-architecture-lite.md"))
	assert.NoFileExists(t, filepath.Join(root, "traditional-docs", "04-database-design.md"))

	// The minimal vibe pack is complete.
	for _, name := range []string{
		"00-epic-map.md",
		"01-feature-story-map.md",
		"02-core-spec.md",
		"03-combo-decision.md",
		"04-milestone-plan.md",
		"05-ai-prompt-pack.md",
	} {
		assert.FileExists(t, filepath.Join(root, "vibe-docs", name))
	}

	// The two trees stay disjoint.
	for _, file := range manifest.TraditionalFiles {
		assert.True(t, strings.HasPrefix(file, TraditionalDir), file)
	}
	for _, file := range manifest.VibeFiles {
		assert.True(t, strings.HasPrefix(file, VibeDir), file)
	}
}

func TestAssemble_ComboExtensionFiles(t *testing.T) {
	root := t.TempDir()
	in := testInputs(t, route.Direct, mode.Minimal, nil)
	require.Equal(t, "c1", in.Recommendation.Primary.Code)

	_, err := Assemble(root, in)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(root, "vibe-docs", "30-requirement-canvas.md"))
	assert.FileExists(t, filepath.Join(root, "vibe-docs", "31-prototype-brief.md"))
}

func TestAssemble_ModeTiersAreNested(t *testing.T) {
	minimal := PlannedFilenames(mustCombo(t, "c2"), mode.Minimal)
	standard := PlannedFilenames(mustCombo(t, "c2"), mode.Standard)
	full := PlannedFilenames(mustCombo(t, "c2"), mode.Full)

	assert.Subset(t, standard, minimal)
	assert.Subset(t, full, standard)
	assert.Contains(t, standard, "10-prd-lite.md")
	assert.Contains(t, full, "23-change-log-governance.md")
	assert.NotContains(t, minimal, "10-prd-lite.md")
	assert.NotContains(t, standard, "20-module-spec-index.md")
}

func TestAssemble_Idempotent(t *testing.T) {
	in := testInputs(t, route.TraditionalFirst, mode.Full, docset.All)

	rootA := t.TempDir()
	rootB := t.TempDir()

	first, err := Assemble(rootA, in)
	require.NoError(t, err)
	second, err := Assemble(rootB, in)
	require.NoError(t, err)

	assert.Equal(t, first.RunID, second.RunID)
	assert.Equal(t, first.Files, second.Files)
	assert.Equal(t, first.TraditionalFiles, second.TraditionalFiles)
	assert.Equal(t, first.VibeFiles, second.VibeFiles)

	for _, rel := range first.Files {
		a, err := os.ReadFile(filepath.Join(rootA, rel))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(rootB, rel))
		require.NoError(t, err)
		assert.Equal(t, string(a), string(b), rel)
	}
}

func TestAssemble_RefusesAskRoute(t *testing.T) {
	in := testInputs(t, route.Ask, mode.SingleFile, nil)

	manifest, err := Assemble(t.TempDir(), in)
	assert.Nil(t, manifest)

	var unresolved *route.UnresolvedError
	require.ErrorAs(t, err, &unresolved)
}

func TestAssemble_WriteFailureReturnsNoManifest(t *testing.T) {
	root := t.TempDir()
	// Block the vibe-docs directory with a file so MkdirAll fails.
	require.NoError(t, os.WriteFile(filepath.Join(root, "vibe-docs"), []byte("blocked"), 0644))

	in := testInputs(t, route.Direct, mode.SingleFile, nil)
	manifest, err := Assemble(root, in)
	assert.Nil(t, manifest)

	var write *WriteError
	require.ErrorAs(t, err, &write)
}

func mustCombo(t *testing.T, code string) *combo.Info {
	t.Helper()
	info, err := combo.Get(code)
	require.NoError(t, err)
	return info
}
