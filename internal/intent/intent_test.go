package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umx-tools/umx/internal/mode"
	"github.com/umx-tools/umx/internal/route"
)

func TestParse_Start(t *testing.T) {
	result, err := Parse("/umx start")
	require.NoError(t, err)

	assert.Equal(t, route.Ask, result.Route)
	assert.Empty(t, result.Combo)
	assert.Equal(t, mode.Unspecified, result.Mode)
	assert.Empty(t, result.Docs)
}

func TestParse_TraditionalWithOverrides(t *testing.T) {
	result, err := Parse("/umx traditional --docs prd,api --combo c2 --mode minimal")
	require.NoError(t, err)

	assert.Equal(t, route.TraditionalFirst, result.Route)
	assert.Equal(t, "prd,api", result.Docs)
	assert.Equal(t, "c2", result.Combo)
	assert.Equal(t, mode.Minimal, result.Mode)
}

func TestParse_DirectWithOverrides(t *testing.T) {
	result, err := Parse("umx direct --combo c3 --mode standard --output ./docs")
	require.NoError(t, err)

	assert.Equal(t, route.Direct, result.Route)
	assert.Equal(t, "c3", result.Combo)
	assert.Equal(t, mode.Standard, result.Mode)
	assert.Equal(t, "./docs", result.Output)
}

func TestParse_AcceptFastPath(t *testing.T) {
	for _, raw := range []string{"/umx accept", "/umx accepted", "accept-recommend"} {
		result, err := Parse(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, route.Direct, result.Route)
		assert.Equal(t, "auto", result.Combo)
		assert.Equal(t, mode.SingleFile, result.Mode)
	}
}

func TestParse_ShortcutPhrasesAliasAccept(t *testing.T) {
	accept, err := Parse("/umx accept")
	require.NoError(t, err)

	phrases := []string{
		"接受推荐",
		"确认",
		"确认推荐",
		"确认方案",
		"开始生成",
		"开始生成文档",
		"接受",
		"accept the recommendation",
		"looks good",
		"Looks Good",
		"go ahead",
		"generate the docs",
	}
	for _, phrase := range phrases {
		result, err := Parse(phrase)
		require.NoError(t, err, phrase)
		assert.Equal(t, accept, result, phrase)
	}
}

func TestParse_Recommend(t *testing.T) {
	result, err := Parse("/umx recommend --mode standard")
	require.NoError(t, err)

	assert.True(t, result.Recommend)
	assert.Equal(t, route.Unspecified, result.Route)
	assert.Equal(t, mode.Standard, result.Mode)
}

func TestParse_UnknownCommand(t *testing.T) {
	for _, raw := range []string{"/umx launch", "make me docs", "", "   "} {
		result, err := Parse(raw)

		var unknown *UnknownCommandError
		require.ErrorAs(t, err, &unknown, raw)
		assert.Equal(t, Intent{}, result)
	}
}

func TestParse_InvalidOverrideValue(t *testing.T) {
	_, err := Parse("/umx direct --mode maximal")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mode")
}

func TestParse_QuotedOverrideValue(t *testing.T) {
	result, err := Parse(`/umx traditional --docs "prd, api" --combo c3`)
	require.NoError(t, err)

	assert.Equal(t, route.TraditionalFirst, result.Route)
	assert.Equal(t, "prd, api", result.Docs)
	assert.Equal(t, "c3", result.Combo)

	result, err = Parse(`/umx direct --output '/tmp/my docs'`)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/my docs", result.Output)
}
