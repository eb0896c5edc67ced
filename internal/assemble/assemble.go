// Package assemble renders the resolved run decisions into the output
// file tree and reports which root was used.
package assemble

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/google/uuid"

	"github.com/umx-tools/umx/internal/combo"
	"github.com/umx-tools/umx/internal/docset"
	"github.com/umx-tools/umx/internal/mode"
	"github.com/umx-tools/umx/internal/requirements"
	"github.com/umx-tools/umx/internal/route"
)

//go:embed templates/*.md.tmpl
var templatesFS embed.FS

var docTemplates = template.Must(template.ParseFS(templatesFS, "templates/*.md.tmpl"))

// Subtree names. The two document trees never share a directory and
// never overwrite each other's files.
const (
	TraditionalDir = "traditional-docs"
	VibeDir        = "vibe-docs"
	RouteSummary   = "route-summary.md"
)

// Inputs carries the fully resolved decisions for one run. Nothing in
// here is mutated during assembly.
type Inputs struct {
	Record         *requirements.Record
	Route          route.Route
	Recommendation *combo.Recommendation
	Mode           mode.Mode
	Docs           []docset.Kind
	Complexity     string

	// Date fixes the render date so identical resolved inputs produce
	// identical bytes.
	Date time.Time
}

// plannedDoc binds an output filename to its template and title.
type plannedDoc struct {
	Filename string
	Title    string
	Template string
}

var baselineDocs = []plannedDoc{
	{"00-epic-map.md", "Epic Map", "epic-map"},
	{"01-feature-story-map.md", "Feature Story Map", "feature-story-map"},
	{"02-core-spec.md", "Core Spec", "core-spec"},
}

var decisionDocs = []plannedDoc{
	{"03-combo-decision.md", "Combo Decision Record", "combo-decision"},
	{"04-milestone-plan.md", "Milestone Plan", "milestone-plan"},
	{"05-ai-prompt-pack.md", "AI Prompt Pack", "ai-prompt-pack"},
}

var standardDocs = []plannedDoc{
	{"10-prd-lite.md", "PRD Lite", "prd-lite"},
	{"11-architecture-lite.md", "Architecture Lite", "architecture-lite"},
	{"12-api-spec.md", "API Spec", "api-spec"},
	{"13-database-design.md", "Database Design", "database-design"},
	{"14-risk-checklist.md", "Risk and Regression Checklist", "risk-checklist"},
}

var fullDocs = []plannedDoc{
	{"20-module-spec-index.md", "Module Spec Index", "module-spec-index"},
	{"21-test-regression-plan.md", "Test and Regression Plan", "test-regression-plan"},
	{"22-ops-runbook.md", "Ops Runbook", "ops-runbook"},
	{"23-change-log-governance.md", "Change Governance", "change-log-governance"},
}

var singleFileDoc = plannedDoc{"00-single-file-pack.md", "Single-File Doc Pack", "single-file-pack"}

var traditionalDocs = map[docset.Kind]plannedDoc{
	docset.PRD:          {"01-prd-lite.md", "PRD Lite", "traditional-prd"},
	docset.Architecture: {"02-architecture-lite.md", "Architecture Lite", "traditional-architecture"},
	docset.API:          {"03-api-spec.md", "API Spec", "traditional-api"},
	docset.Database:     {"04-database-design.md", "Database Design", "traditional-database"},
}

// plannedVibeDocs returns the vibe-tree files a combo and mode produce,
// in write order.
func plannedVibeDocs(primary *combo.Info, m mode.Mode) []plannedDoc {
	if m == mode.SingleFile {
		return []plannedDoc{singleFileDoc}
	}

	docs := append([]plannedDoc(nil), baselineDocs...)
	docs = append(docs, decisionDocs...)
	if m.Includes(mode.Standard) {
		docs = append(docs, standardDocs...)
	}
	if m == mode.Full {
		docs = append(docs, fullDocs...)
	}
	for _, ext := range primary.ExtensionDocs {
		docs = append(docs, plannedDoc{ext.Filename, ext.Title, "extension"})
	}
	return docs
}

// PlannedFilenames lists the vibe filenames for a combo and mode, for
// reports.
func PlannedFilenames(primary *combo.Info, m mode.Mode) []string {
	planned := plannedVibeDocs(primary, m)
	names := make([]string, len(planned))
	for i, doc := range planned {
		names[i] = doc.Filename
	}
	return names
}

type stagedFile struct {
	RelPath string
	Content []byte
}

// runID derives a deterministic UUID from the resolved inputs, so the
// manifest for identical inputs is reproducible byte for byte.
func runID(in Inputs) string {
	fingerprint := fmt.Sprintf("%s|%s|%s|%v|%s|%s",
		in.Route, in.Recommendation.Primary.Code, in.Mode, in.Docs,
		in.Record.ProjectName, in.Date.Format("2006-01-02"))
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fingerprint)).String()
}

// Assemble renders and writes the output tree for one run and returns
// its manifest. Every file is rendered to memory before the first byte
// is written; a write failure aborts the run with no manifest.
func Assemble(root string, in Inputs) (*Manifest, error) {
	if !in.Route.Terminal() {
		return nil, &route.UnresolvedError{Route: in.Route}
	}
	if in.Recommendation == nil || in.Recommendation.Primary == nil {
		return nil, fmt.Errorf("no combo resolved for assembly")
	}

	ctx := newDocContext(in)

	var staged []stagedFile
	manifest := &Manifest{
		RunID: runID(in),
		Root:  root,
	}

	summary, err := render("route-summary", ctx)
	if err != nil {
		return nil, err
	}
	staged = append(staged, stagedFile{RouteSummary, summary})
	manifest.Files = append(manifest.Files, RouteSummary)

	if in.Route == route.TraditionalFirst {
		index, err := render("traditional-index", ctx)
		if err != nil {
			return nil, err
		}
		rel := filepath.Join(TraditionalDir, "00-traditional-index.md")
		staged = append(staged, stagedFile{rel, index})
		manifest.Files = append(manifest.Files, rel)
		manifest.TraditionalFiles = append(manifest.TraditionalFiles, rel)

		for _, kind := range in.Docs {
			doc := traditionalDocs[kind]
			body, err := render(doc.Template, ctx.withTitle(doc.Title))
			if err != nil {
				return nil, err
			}
			rel := filepath.Join(TraditionalDir, doc.Filename)
			staged = append(staged, stagedFile{rel, body})
			manifest.Files = append(manifest.Files, rel)
			manifest.TraditionalFiles = append(manifest.TraditionalFiles, rel)
		}
	}

	for _, doc := range plannedVibeDocs(in.Recommendation.Primary, in.Mode) {
		body, err := render(doc.Template, ctx.withTitle(doc.Title))
		if err != nil {
			return nil, err
		}
		rel := filepath.Join(VibeDir, doc.Filename)
		staged = append(staged, stagedFile{rel, body})
		manifest.Files = append(manifest.Files, rel)
		manifest.VibeFiles = append(manifest.VibeFiles, rel)
	}

	for _, file := range staged {
		path := filepath.Join(root, file.RelPath)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, &WriteError{Path: path, Err: err}
		}
		if err := os.WriteFile(path, file.Content, 0644); err != nil {
			return nil, &WriteError{Path: path, Err: err}
		}
	}

	return manifest, nil
}

// docContext is the data every template renders from.
type docContext struct {
	ProjectName string
	ProjectGoal string
	TargetUsers string
	Date        string

	Route          string
	Primary        *combo.Info
	Secondary      *combo.Info
	SecondaryLabel string
	Mode           string
	Complexity     string
	Reasons        []string

	// Title is set per generic document (traditional and extension files).
	Title string

	// TraditionalDocs lists the requested traditional filenames for the
	// index and summary.
	TraditionalDocs []string

	// VibeDocs lists the planned vibe filenames for the summary.
	VibeDocs []string
}

func newDocContext(in Inputs) docContext {
	ctx := docContext{
		ProjectName:    in.Record.ProjectName,
		ProjectGoal:    in.Record.ProjectGoal,
		TargetUsers:    in.Record.TargetUsers,
		Date:           in.Date.Format("2006-01-02"),
		Route:          string(in.Route),
		Primary:        in.Recommendation.Primary,
		Secondary:      in.Recommendation.Secondary,
		SecondaryLabel: "none",
		Mode:           string(in.Mode),
		Complexity:     in.Complexity,
		Reasons:        in.Recommendation.Reasons,
		VibeDocs:       PlannedFilenames(in.Recommendation.Primary, in.Mode),
	}
	if in.Recommendation.Secondary != nil {
		ctx.SecondaryLabel = in.Recommendation.Secondary.Label()
	}
	if in.Route == route.TraditionalFirst {
		for _, kind := range in.Docs {
			ctx.TraditionalDocs = append(ctx.TraditionalDocs, traditionalDocs[kind].Filename)
		}
	}
	return ctx
}

func (c docContext) withTitle(title string) docContext {
	c.Title = title
	return c
}

func render(name string, ctx docContext) ([]byte, error) {
	var buf bytes.Buffer
	if err := docTemplates.ExecuteTemplate(&buf, name+".md.tmpl", ctx); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", name, err)
	}
	content := strings.TrimRight(buf.String(), "\n") + "\n"
	return []byte(content), nil
}
