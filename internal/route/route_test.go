package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_ValidRoutes(t *testing.T) {
	for _, raw := range []string{"ask", "traditional-first", "direct"} {
		r, err := Parse(raw)
		assert.NoError(t, err)
		assert.Equal(t, Route(raw), r)
	}
}

func TestParse_InvalidRoute(t *testing.T) {
	r, err := Parse("sideways")
	assert.Error(t, err)
	assert.Equal(t, Unspecified, r)
	assert.Contains(t, err.Error(), "invalid route")
}

func TestTerminal(t *testing.T) {
	assert.False(t, Ask.Terminal())
	assert.False(t, Unspecified.Terminal())
	assert.True(t, TraditionalFirst.Terminal())
	assert.True(t, Direct.Terminal())
}

func TestResolve_ExplicitArgumentWins(t *testing.T) {
	assert.Equal(t, Direct, Resolve(Direct, TraditionalFirst))
	assert.Equal(t, TraditionalFirst, Resolve(TraditionalFirst, Unspecified))
}

func TestResolve_InferredUsedWhenNoArgument(t *testing.T) {
	assert.Equal(t, Direct, Resolve(Unspecified, Direct))
}

func TestResolve_DefaultsToAsk(t *testing.T) {
	assert.Equal(t, Ask, Resolve(Unspecified, Unspecified))
}

func TestUnresolvedError_Message(t *testing.T) {
	err := &UnresolvedError{Route: Ask}
	assert.Contains(t, err.Error(), "first-round questions")
}
