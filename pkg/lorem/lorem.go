// Package lorem produces lorem ipsum filler text. It is the default text
// provider for string fields.
package lorem

import (
	mathrand "math/rand/v2"
	"strings"
)

// loremWords is the classic lorem ipsum vocabulary.
var loremWords = []string{
	"ad", "adipisicing", "aliqua", "aliquip", "amet", "anim", "aute", "cillum",
	"commodo", "consectetur", "consequat", "culpa", "cupidatat", "deserunt", "do", "dolor",
	"dolore", "duis", "ea", "eiusmod", "elit", "enim", "esse", "est",
	"et", "eu", "ex", "excepteur", "exercitation", "fugiat", "id", "in",
	"incididunt", "ipsum", "irure", "labore", "laboris", "laborum", "lorem", "magna",
	"minim", "mollit", "nisi", "non", "nostrud", "nulla", "occaecat", "officia",
	"pariatur", "proident", "qui", "quis", "reprehenderit", "sint", "sit", "sunt",
	"tempor", "ullamco", "ut", "velit", "veniam", "voluptate",
}

// Vocabulary returns a copy of the word list.
func Vocabulary() []string {
	out := make([]string, len(loremWords))
	copy(out, loremWords)
	return out
}

// Provider draws words from the lorem vocabulary.
// A nil Rand uses the global math/rand/v2 source.
type Provider struct {
	Rand *mathrand.Rand
}

// Default uses the global random source and is safe for concurrent use.
var Default = &Provider{}

// Words returns n space-separated lowercase words. n <= 0 yields "".
func (p *Provider) Words(n int) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(loremWords[p.intN(len(loremWords))])
	}
	return b.String()
}

func (p *Provider) intN(n int) int {
	if p != nil && p.Rand != nil {
		return p.Rand.IntN(n)
	}
	return mathrand.IntN(n)
}

// Words returns n words using Default.
func Words(n int) string {
	return Default.Words(n)
}
