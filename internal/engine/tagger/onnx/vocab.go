package onnx

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// vocab holds a WordPiece vocabulary. Token IDs are line numbers (0-indexed).
type vocab struct {
	tokenToID map[string]int64
	size      int

	unkID int64
	clsID int64
	sepID int64
}

func loadVocab(path string) (*vocab, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vocab: %w", err)
	}
	defer f.Close()
	return readVocab(f)
}

// readVocab parses one token per line and resolves the special tokens the
// encoder needs.
func readVocab(r io.Reader) (*vocab, error) {
	tokenToID := make(map[string]int64, 32000)
	n := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		tok := scanner.Text()
		if _, dup := tokenToID[tok]; !dup {
			tokenToID[tok] = int64(n)
		}
		n++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("vocab: read error: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("vocab: empty vocabulary")
	}

	v := &vocab{tokenToID: tokenToID, size: n}
	specials := []struct {
		name string
		dest *int64
	}{
		{"[UNK]", &v.unkID},
		{"[CLS]", &v.clsID},
		{"[SEP]", &v.sepID},
	}
	for _, s := range specials {
		id, ok := tokenToID[s.name]
		if !ok {
			return nil, fmt.Errorf("vocab: missing special token %s", s.name)
		}
		*s.dest = id
	}
	return v, nil
}

// lookup returns the ID of token, or the [UNK] ID.
func (v *vocab) lookup(token string) int64 {
	if id, ok := v.tokenToID[token]; ok {
		return id
	}
	return v.unkID
}

func (v *vocab) contains(token string) bool {
	_, ok := v.tokenToID[token]
	return ok
}
