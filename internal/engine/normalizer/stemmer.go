package normalizer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kljensen/snowball/english"
	porterstemmer "github.com/reiver/go-porterstemmer"
)

// Stemmer reduces a word to its stem.
type Stemmer interface {
	Stem(word string) string
}

// Stemmer names accepted by configuration.
const (
	StemmerPorter   = "porter"
	StemmerSnowball = "snowball"
)

// Porter is the original Porter algorithm. Words are lowercased by the
// algorithm itself; words of one or two runes are only lowercased.
type Porter struct{}

// Stem implements Stemmer.
func (Porter) Stem(word string) string {
	if utf8.RuneCountInString(word) <= 2 {
		return strings.ToLower(word)
	}
	return porterstemmer.StemString(word)
}

// Snowball is the Porter2 (English Snowball) algorithm, which also
// lowercases.
type Snowball struct{}

// Stem implements Stemmer.
func (Snowball) Stem(word string) string {
	return english.Stem(word, true)
}

// NewStemmer returns the named stemmer.
func NewStemmer(name string) (Stemmer, error) {
	switch name {
	case StemmerPorter, "":
		return Porter{}, nil
	case StemmerSnowball:
		return Snowball{}, nil
	default:
		return nil, fmt.Errorf("normalizer: unknown stemmer %q", name)
	}
}
