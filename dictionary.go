package elementify

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/goccy/go-json"
)

//go:embed data/elements.json
var elementsJSON []byte

var (
	periodicTable     *Dictionary
	periodicTableOnce sync.Once
)

// Dictionary is an immutable, validated, ordered list of tokens. It is safe
// for concurrent use.
type Dictionary struct {
	tokens  []Token
	symbols []string // lowercased symbols, parallel to tokens
	maxLen  int
}

// NewDictionary validates tokens and returns a Dictionary holding a copy of
// them. Token order is preserved and determines enumeration order.
func NewDictionary(tokens []Token) (*Dictionary, error) {
	d := &Dictionary{
		tokens:  slices.Clone(tokens),
		symbols: make([]string, len(tokens)),
	}

	for i, t := range d.tokens {
		if t.Symbol == "" {
			return nil, &InvalidSymbolError{Index: i, Token: t}
		}
		d.symbols[i] = strings.ToLower(t.Symbol)
		d.maxLen = max(d.maxLen, len(d.symbols[i]))
	}

	return d, nil
}

// LoadDictionary decodes a JSON array of token records from r.
func LoadDictionary(r io.Reader) (*Dictionary, error) {
	var tokens []Token
	if err := json.NewDecoder(r).Decode(&tokens); err != nil {
		return nil, fmt.Errorf("decode dictionary: %w", err)
	}
	return NewDictionary(tokens)
}

// LoadDictionaryFile reads a JSON dictionary from path.
func LoadDictionaryFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	d, err := LoadDictionary(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// PeriodicTable returns the built-in dictionary: the 118 chemical elements
// in atomic number order, followed by a token for the space character.
func PeriodicTable() *Dictionary {
	periodicTableOnce.Do(func() {
		d, err := LoadDictionary(bytes.NewReader(elementsJSON))
		if err != nil {
			panic("elementify: embedded periodic table: " + err.Error())
		}
		periodicTable = d
	})
	return periodicTable
}

// Tokens returns a copy of the dictionary's tokens.
func (d *Dictionary) Tokens() []Token {
	return slices.Clone(d.tokens)
}

// Len returns the number of tokens.
func (d *Dictionary) Len() int {
	return len(d.tokens)
}

// MaxSymbolLen returns the length in bytes of the longest symbol.
func (d *Dictionary) MaxSymbolLen() int {
	return d.maxLen
}

// Lookup returns every token whose symbol matches symbol case-insensitively,
// in dictionary order.
func (d *Dictionary) Lookup(symbol string) []Token {
	var out []Token
	for i, s := range d.symbols {
		if strings.EqualFold(s, symbol) {
			out = append(out, d.tokens[i])
		}
	}
	return out
}

// Segment returns every segmentation of word. A validated dictionary cannot
// make segmentation fail.
func (d *Dictionary) Segment(word string) []Segmentation {
	segs, _ := NewSegmenter(d).Segment(word)
	return segs
}
