package normalizer

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"github.com/kljensen/snowball/english"

	"github.com/crimson-sun/tagviz/internal/model"
)

//go:embed english.txt
var englishStopwords []byte

// Stopwords reports whether a lowercased word is a stopword.
type Stopwords interface {
	Contains(word string) bool
}

// Stopword list names accepted by configuration.
const (
	StopwordsNLTK     = "nltk"
	StopwordsSnowball = "snowball"
)

// WordSet is a fixed stopword set. It is never modified after construction.
type WordSet map[string]struct{}

// Contains implements Stopwords.
func (s WordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// ParseWordSet reads one word per line; blank lines and lines starting with
// '#' are ignored.
func ParseWordSet(data []byte) (WordSet, error) {
	set := make(WordSet)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		set[strings.ToLower(w)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("empty stopword list")
	}
	return set, nil
}

type snowballStopwords struct{}

func (snowballStopwords) Contains(word string) bool {
	return english.IsStopWord(word)
}

// NewStopwords returns the named stopword list.
func NewStopwords(name string) (Stopwords, error) {
	switch name {
	case StopwordsNLTK, "":
		set, err := ParseWordSet(englishStopwords)
		if err != nil {
			return nil, fmt.Errorf("normalizer: stopwords: %v: %w", err, model.ErrResourceUnavailable)
		}
		return set, nil
	case StopwordsSnowball:
		return snowballStopwords{}, nil
	default:
		return nil, fmt.Errorf("normalizer: unknown stopword list %q", name)
	}
}
