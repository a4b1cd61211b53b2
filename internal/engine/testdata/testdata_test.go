package testdata

import (
	"testing"
)

func TestLoadCorpus(t *testing.T) {
	entries, err := LoadCorpus()
	if err != nil {
		t.Fatalf("LoadCorpus() error: %v", err)
	}

	if len(entries) == 0 {
		t.Fatal("corpus is empty")
	}
	t.Logf("Total entries: %d", len(entries))

	for i, e := range entries {
		if e.Description == "" {
			t.Errorf("entry[%d] has empty description", i)
		}
		if e.Tokens == nil {
			t.Errorf("entry[%d] (%s) has no tokens field", i, e.Description)
		}
		if len(e.Content) > len(e.Tokens) {
			t.Errorf("entry[%d] (%s) has more content tokens than tokens", i, e.Description)
		}
	}
}

// Content must be an order-preserving subsequence of Tokens.
func TestCorpusContentIsSubsequence(t *testing.T) {
	entries, err := LoadCorpus()
	if err != nil {
		t.Fatalf("LoadCorpus() error: %v", err)
	}

	for i, e := range entries {
		j := 0
		for _, tok := range e.Tokens {
			if j < len(e.Content) && e.Content[j] == tok {
				j++
			}
		}
		if j != len(e.Content) {
			t.Errorf("entry[%d] (%s): content %v is not a subsequence of %v", i, e.Description, e.Content, e.Tokens)
		}
	}
}

func TestCorpusHasEmptyInput(t *testing.T) {
	entries, err := LoadCorpus()
	if err != nil {
		t.Fatalf("LoadCorpus() error: %v", err)
	}
	for _, e := range entries {
		if e.Text == "" {
			return
		}
	}
	t.Error("corpus has no empty-input entry")
}
