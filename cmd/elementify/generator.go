package main

import (
	"math/rand"
	"strings"

	"github.com/jonfriesen/elementify"
	"github.com/jonfriesen/elementify/internal/normalize"
)

// WordGenerator builds random words that the dictionary can always spell.
type WordGenerator struct {
	rng     *rand.Rand
	symbols []string
}

// NewWordGenerator creates a generator over the dictionary's letter symbols.
func NewWordGenerator(dict *elementify.Dictionary, seed int64) *WordGenerator {
	g := &WordGenerator{rng: rand.New(rand.NewSource(seed))}
	for _, tok := range dict.Tokens() {
		if tok.IsSpace() {
			continue
		}
		sym := strings.ToLower(tok.Symbol)
		if normalize.Valid(sym) && !strings.Contains(sym, " ") {
			g.symbols = append(g.symbols, sym)
		}
	}
	return g
}

// Generate joins two to four random symbols. It returns "" when the
// dictionary has no usable symbols.
func (g *WordGenerator) Generate() string {
	if len(g.symbols) == 0 {
		return ""
	}
	n := 2 + g.rng.Intn(3)
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteString(g.symbols[g.rng.Intn(len(g.symbols))])
	}
	return sb.String()
}

// GenerateBatch produces n random words.
func (g *WordGenerator) GenerateBatch(n int) []string {
	words := make([]string, n)
	for i := 0; i < n; i++ {
		words[i] = g.Generate()
	}
	return words
}
