package lorem

import (
	mathrand "math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords_Count(t *testing.T) {
	for _, n := range []int{1, 2, 5, 9, 40} {
		out := Words(n)
		parts := strings.Split(out, " ")
		assert.Len(t, parts, n, "Words(%d) = %q", n, out)
		for _, w := range parts {
			assert.True(t, slices.Contains(loremWords, w), "unexpected word %q", w)
		}
	}
}

func TestWords_NonPositive(t *testing.T) {
	assert.Equal(t, "", Words(0))
	assert.Equal(t, "", Words(-3))
}

func TestProvider_Seeded(t *testing.T) {
	a := &Provider{Rand: mathrand.New(mathrand.NewPCG(7, 0))}
	b := &Provider{Rand: mathrand.New(mathrand.NewPCG(7, 0))}

	assert.Equal(t, a.Words(12), b.Words(12))
}

func TestVocabulary_IsCopy(t *testing.T) {
	v := Vocabulary()
	v[0] = "changed"
	assert.NotEqual(t, "changed", loremWords[0])
}
