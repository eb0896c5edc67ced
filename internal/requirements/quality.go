package requirements

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// placeholderTokens is the fixed vocabulary of template stand-ins that
// must not survive in a required field. Matching is case-insensitive
// substring matching.
var placeholderTokens = []string{
	"待补充",
	"todo",
	"tbd",
	"to be determined",
	"new project",
	"example",
	"示例",
	"unknown",
	"未定",
}

// minGoalRunes guards against goals too short to carry an acceptance
// criterion.
const minGoalRunes = 8

// FieldIssue names one required field that failed the quality gate.
type FieldIssue struct {
	Field  string
	Reason string
}

// PlaceholderError reports required fields that are still template
// placeholders. Fatal unless the gate is explicitly bypassed.
type PlaceholderError struct {
	Issues []FieldIssue
}

func (e *PlaceholderError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = fmt.Sprintf("%s: %s", issue.Field, issue.Reason)
	}
	return "input quality check failed: " + strings.Join(parts, "; ")
}

// CheckQuality gates the record on placeholder content in the required
// fields. The check is pure. Bypass disables it entirely and must come
// from an explicit flag, never a default.
func CheckQuality(rec *Record, bypass bool) error {
	if bypass {
		return nil
	}

	required := []struct {
		field string
		value string
	}{
		{"project_name", rec.ProjectName},
		{"project_goal", rec.ProjectGoal},
		{"target_users", rec.TargetUsers},
	}

	var issues []FieldIssue
	for _, f := range required {
		value := strings.TrimSpace(f.value)
		lowered := strings.ToLower(value)

		switch {
		case value == "":
			issues = append(issues, FieldIssue{f.field, "is empty"})
		case strings.ContainsAny(value, "<>"):
			issues = append(issues, FieldIssue{f.field, "still contains a template marker"})
		case matchesPlaceholder(lowered):
			issues = append(issues, FieldIssue{f.field, fmt.Sprintf("still placeholder/example text: %s", value)})
		case f.field == "project_goal" && utf8.RuneCountInString(value) < minGoalRunes:
			issues = append(issues, FieldIssue{f.field, "too short: state the business outcome and acceptance criteria"})
		}
	}

	if len(issues) > 0 {
		return &PlaceholderError{Issues: issues}
	}
	return nil
}

func matchesPlaceholder(lowered string) bool {
	for _, token := range placeholderTokens {
		if strings.Contains(lowered, token) {
			return true
		}
	}
	return false
}
