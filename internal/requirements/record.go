// Package requirements loads the project-requirements record and runs
// the quality and staleness checks that gate a run.
package requirements

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Level grades an attribute as low, medium or high.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Rank returns the level's position in the low < medium < high order.
func (l Level) Rank() int {
	switch l {
	case LevelMedium:
		return 1
	case LevelHigh:
		return 2
	}
	return 0
}

// Speed grades the expected iteration speed.
type Speed string

const (
	SpeedSlow   Speed = "slow"
	SpeedNormal Speed = "normal"
	SpeedFast   Speed = "fast"
)

// Rank returns the speed's position in the slow < normal < fast order.
func (s Speed) Rank() int {
	switch s {
	case SpeedNormal:
		return 1
	case SpeedFast:
		return 2
	}
	return 0
}

// Record is the normalised requirements record for one run. It is
// immutable once loaded: every later component reads it, none mutate it.
type Record struct {
	ProjectName string
	ProjectGoal string
	TargetUsers string

	TeamSize    int
	ModuleCount int

	UIPriority        Level
	BackendComplexity Level
	DomainComplexity  Level
	ComplianceLevel   Level

	DesignSource              string // none, wireframe or figma
	FrontendBackendSeparation bool
	NeedFastValidation        bool
	IterationSpeed            Speed

	// Extra preserves unknown free-form fields for the external renderer.
	Extra map[string]string
}

// Defaults applied when a field is missing or malformed.
const (
	defaultProjectName = "New Project"
	defaultProjectGoal = "待补充项目目标"
	defaultTargetUsers = "待补充目标用户"
)

var knownFields = map[string]bool{
	"project_name":                true,
	"project_goal":                true,
	"target_users":                true,
	"team_size":                   true,
	"module_count":                true,
	"ui_priority":                 true,
	"backend_complexity":          true,
	"domain_complexity":           true,
	"compliance_level":            true,
	"design_source":               true,
	"frontend_backend_separation": true,
	"need_fast_validation":        true,
	"iteration_speed":             true,
}

// NotFoundError reports a missing requirements source. No fallback
// content is ever invented for a missing source.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("requirements file not found: %s", e.Path)
}

// Load reads and normalises a requirements record from a JSON or YAML
// file. The format is chosen by extension (.yaml/.yml parse as YAML,
// everything else as JSON).
func Load(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("failed to read requirements: %w", err)
	}

	raw := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse requirements YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse requirements JSON: %w", err)
		}
	}

	return normalize(raw), nil
}

func normalize(raw map[string]any) *Record {
	rec := &Record{
		ProjectName: textOr(raw["project_name"], defaultProjectName),
		ProjectGoal: textOr(raw["project_goal"], defaultProjectGoal),
		TargetUsers: textOr(raw["target_users"], defaultTargetUsers),

		TeamSize:    atLeast(intOr(raw["team_size"], 2), 1),
		ModuleCount: atLeast(intOr(raw["module_count"], 3), 1),

		UIPriority:        levelOr(raw["ui_priority"], LevelMedium),
		BackendComplexity: levelOr(raw["backend_complexity"], LevelMedium),
		DomainComplexity:  levelOr(raw["domain_complexity"], LevelLow),
		ComplianceLevel:   levelOr(raw["compliance_level"], LevelLow),

		DesignSource:              designOr(raw["design_source"], "none"),
		FrontendBackendSeparation: boolOr(raw["frontend_backend_separation"], false),
		NeedFastValidation:        boolOr(raw["need_fast_validation"], true),
		IterationSpeed:            speedOr(raw["iteration_speed"], SpeedNormal),
	}

	for key, value := range raw {
		if knownFields[key] {
			continue
		}
		if rec.Extra == nil {
			rec.Extra = map[string]string{}
		}
		rec.Extra[key] = strings.TrimSpace(fmt.Sprintf("%v", value))
	}

	return rec
}

func textOr(value any, fallback string) string {
	if value == nil {
		return fallback
	}
	text := strings.TrimSpace(fmt.Sprintf("%v", value))
	if text == "" {
		return fallback
	}
	return text
}

func intOr(value any, fallback int) int {
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return fallback
}

func atLeast(n, floor int) int {
	if n < floor {
		return floor
	}
	return n
}

func levelOr(value any, fallback Level) Level {
	switch Level(lowered(value)) {
	case LevelLow:
		return LevelLow
	case LevelMedium:
		return LevelMedium
	case LevelHigh:
		return LevelHigh
	}
	return fallback
}

func speedOr(value any, fallback Speed) Speed {
	switch Speed(lowered(value)) {
	case SpeedSlow:
		return SpeedSlow
	case SpeedNormal:
		return SpeedNormal
	case SpeedFast:
		return SpeedFast
	}
	return fallback
}

func designOr(value any, fallback string) string {
	switch text := lowered(value); text {
	case "none", "wireframe", "figma":
		return text
	}
	return fallback
}

func boolOr(value any, fallback bool) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "yes", "y":
			return true
		case "false", "0", "no", "n":
			return false
		}
	}
	return fallback
}

func lowered(value any) string {
	if value == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(fmt.Sprintf("%v", value)))
}
