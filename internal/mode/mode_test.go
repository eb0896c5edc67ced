package mode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_Aliases(t *testing.T) {
	for _, raw := range []string{"single", "single_file", "single-file"} {
		m, err := Parse(raw)
		assert.NoError(t, err)
		assert.Equal(t, SingleFile, m)
	}
}

func TestParse_Invalid(t *testing.T) {
	m, err := Parse("maximal")
	assert.Error(t, err)
	assert.Equal(t, Unspecified, m)
}

func TestRank_MonotonicNesting(t *testing.T) {
	ordered := []Mode{SingleFile, Minimal, Standard, Full}
	for i := 1; i < len(ordered); i++ {
		assert.Greater(t, ordered[i].Rank(), ordered[i-1].Rank())
		assert.True(t, ordered[i].Includes(ordered[i-1]))
		assert.False(t, ordered[i-1].Includes(ordered[i]))
	}
	assert.True(t, Full.Includes(SingleFile))
}

func TestSelect_AutoResolvesToCanonical(t *testing.T) {
	assert.Equal(t, Standard, Select(Auto, Standard))
	assert.Equal(t, SingleFile, Select(Unspecified, SingleFile))
}

func TestSelect_ExplicitAlwaysWins(t *testing.T) {
	assert.Equal(t, Full, Select(Full, SingleFile))
	assert.Equal(t, Minimal, Select(Minimal, Full))
}
