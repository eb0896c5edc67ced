// Package intent maps instruction strings, either the structured
// "/umx <verb> --flag value" form or a fixed set of natural-language
// shortcut phrases, to a normalized intent record. Unrecognized input
// fails; it is never silently mapped to a default route.
package intent

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/umx-tools/umx/internal/mode"
	"github.com/umx-tools/umx/internal/route"
)

// Intent is the normalized interpretation of one instruction string.
// Fields the instruction did not set stay at their sentinel values.
type Intent struct {
	Route  route.Route
	Combo  string // "" when unset
	Mode   mode.Mode
	Docs   string // raw comma list, "" when unset
	Output string

	// Recommend asks for a print-only recommendation report instead of
	// an assembled tree.
	Recommend bool
}

// UnknownCommandError reports an instruction that matched no
// recognized form.
type UnknownCommandError struct {
	Input string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command: %q (use /umx start, /umx traditional, /umx direct, /umx accept or /umx recommend)", e.Input)
}

// acceptIntent is the single intent value every acceptance shortcut
// phrase aliases. New phrases extend shortcutPhrases; they never add
// intent variants.
func acceptIntent() Intent {
	return Intent{
		Route: route.Direct,
		Combo: "auto",
		Mode:  mode.SingleFile,
	}
}

// shortcutPhrases is the fixed finite mapping of natural-language
// acceptance phrases. Each phrase is an alias for the accept verb.
var shortcutPhrases = map[string]bool{
	"接受推荐":                    true,
	"确认":                      true,
	"确认推荐":                    true,
	"确认方案":                    true,
	"开始生成":                    true,
	"开始生成文档":                  true,
	"接受":                      true,
	"accept the recommendation": true,
	"looks good":                true,
	"go ahead":                  true,
	"generate the docs":         true,
}

// Parse interprets one instruction string.
func Parse(raw string) (Intent, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return Intent{}, &UnknownCommandError{Input: raw}
	}

	if shortcutPhrases[strings.ToLower(cleaned)] {
		return acceptIntent(), nil
	}

	tokens := splitInstruction(cleaned)
	if len(tokens) > 0 && (tokens[0] == "/umx" || tokens[0] == "umx") {
		tokens = tokens[1:]
	}
	if len(tokens) == 0 {
		return Intent{}, &UnknownCommandError{Input: raw}
	}

	var result Intent
	switch strings.ToLower(tokens[0]) {
	case "start":
		// Begin the first-round question flow; nothing else is set and
		// nothing is persisted.
		result.Route = route.Ask
		return result, nil
	case "traditional":
		result.Route = route.TraditionalFirst
	case "direct":
		result.Route = route.Direct
	case "recommend":
		result.Recommend = true
	case "accept", "accepted", "accept-recommend":
		result = acceptIntent()
	default:
		return Intent{}, &UnknownCommandError{Input: raw}
	}

	if err := applyOverrides(&result, tokens[1:]); err != nil {
		return Intent{}, err
	}
	return result, nil
}

// splitInstruction tokenizes an instruction on whitespace, keeping
// single- or double-quoted values together so a quoted doc list like
// --docs "prd, api" arrives as one token.
func splitInstruction(s string) []string {
	var tokens []string
	var current strings.Builder
	var quote rune
	inToken := false

	flush := func() {
		if inToken {
			tokens = append(tokens, current.String())
			current.Reset()
			inToken = false
		}
	}

	for _, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inToken = true
		case unicode.IsSpace(r):
			flush()
		default:
			current.WriteRune(r)
			inToken = true
		}
	}
	flush()
	return tokens
}

// applyOverrides consumes trailing "--flag value" pairs.
func applyOverrides(result *Intent, tokens []string) error {
	for i := 0; i < len(tokens); i++ {
		key := tokens[i]
		if !strings.HasPrefix(key, "--") || i+1 >= len(tokens) {
			continue
		}
		value := tokens[i+1]
		i++

		switch key {
		case "--docs":
			result.Docs = value
		case "--combo":
			result.Combo = strings.ToLower(value)
		case "--mode":
			m, err := mode.Parse(strings.ToLower(value))
			if err != nil {
				return err
			}
			result.Mode = m
		case "--output":
			result.Output = value
		case "--path", "--route":
			r, err := route.Parse(strings.ToLower(value))
			if err != nil {
				return err
			}
			result.Route = r
		}
	}
	return nil
}
