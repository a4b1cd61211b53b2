package onnx

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const (
	defaultMaxSeqLen = 256
	maxWordRunes     = 100
)

// window is one model input: [CLS] pieces... [SEP] covering tokens
// [start, end) of the caller's token slice.
type window struct {
	ids   []int64
	mask  []int64
	first []int // position of each token's first piece, len == end-start
	start int
	end   int
}

// encoder performs BERT-style WordPiece encoding of pre-split tokens.
type encoder struct {
	vocab     *vocab
	lowercase bool
	maxSeqLen int
}

func newEncoder(v *vocab, lowercase bool) *encoder {
	return &encoder{vocab: v, lowercase: lowercase, maxSeqLen: defaultMaxSeqLen}
}

// encodeWord returns the WordPiece IDs of a single token. It never returns
// an empty slice: tokens that clean to nothing become [UNK].
func (e *encoder) encodeWord(word string) []int64 {
	word = cleanText(word)
	if e.lowercase {
		word = stripAccents(strings.ToLower(word))
	}

	var ids []int64
	for _, part := range strings.Fields(word) {
		for _, piece := range splitOnPunctuation(part) {
			ids = append(ids, e.wordpiece(piece)...)
		}
	}
	if len(ids) == 0 {
		return []int64{e.vocab.unkID}
	}
	return ids
}

// wordpiece greedily decomposes one basic token into the longest matching
// vocabulary pieces, continuation pieces prefixed with "##".
func (e *encoder) wordpiece(token string) []int64 {
	runes := []rune(token)
	if len(runes) > maxWordRunes {
		return []int64{e.vocab.unkID}
	}

	var ids []int64
	start := 0
	for start < len(runes) {
		end := len(runes)
		found := false
		for end > start {
			sub := string(runes[start:end])
			if start > 0 {
				sub = "##" + sub
			}
			if e.vocab.contains(sub) {
				ids = append(ids, e.vocab.lookup(sub))
				found = true
				break
			}
			end--
		}
		if !found {
			return []int64{e.vocab.unkID}
		}
		start = end
	}
	return ids
}

// windows packs tokens into model inputs no longer than maxSeqLen. Tokens are
// never split across windows; a single token longer than the budget keeps
// only its leading pieces.
func (e *encoder) windows(tokens []string) []window {
	if len(tokens) == 0 {
		return nil
	}
	budget := e.maxSeqLen - 2

	var out []window
	cur := window{ids: []int64{e.vocab.clsID}}
	for i, tok := range tokens {
		pieces := e.encodeWord(tok)
		if len(pieces) > budget {
			pieces = pieces[:budget]
		}
		if len(cur.first) > 0 && len(cur.ids)-1+len(pieces) > budget {
			out = append(out, e.seal(cur, i))
			cur = window{ids: []int64{e.vocab.clsID}, start: i}
		}
		cur.first = append(cur.first, len(cur.ids))
		cur.ids = append(cur.ids, pieces...)
	}
	return append(out, e.seal(cur, len(tokens)))
}

func (e *encoder) seal(w window, end int) window {
	w.ids = append(w.ids, e.vocab.sepID)
	w.mask = make([]int64, len(w.ids))
	for i := range w.mask {
		w.mask[i] = 1
	}
	w.end = end
	return w
}

// cleanText removes control characters and maps whitespace to spaces.
func cleanText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r == 0 || r == 0xFFFD || isControl(r) {
			continue
		}
		if isWhitespace(r) {
			b.WriteRune(' ')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// stripAccents removes combining marks after NFD normalization.
func stripAccents(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range norm.NFD.String(text) {
		if unicode.In(r, unicode.Mn) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// splitOnPunctuation splits at each punctuation rune, keeping the
// punctuation as its own piece.
func splitOnPunctuation(word string) []string {
	var parts []string
	var current strings.Builder
	for _, r := range word {
		if isPunctuation(r) {
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
			parts = append(parts, string(r))
		} else {
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}

func isWhitespace(r rune) bool {
	if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

func isControl(r rune) bool {
	if r == '\t' || r == '\n' || r == '\r' {
		return false
	}
	return unicode.IsControl(r)
}

// isPunctuation follows BERT: all non-alphanumeric printable ASCII plus the
// Unicode punctuation categories.
func isPunctuation(r rune) bool {
	if (r >= 33 && r <= 47) || (r >= 58 && r <= 64) ||
		(r >= 91 && r <= 96) || (r >= 123 && r <= 126) {
		return true
	}
	return unicode.IsPunct(r)
}
