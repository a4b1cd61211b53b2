package model

// TaggedToken pairs a token with the POS tag assigned to it.
type TaggedToken struct {
	Token string `json:"token"`
	Tag   string `json:"tag"`
}

// Tokens returns the token of every tagged token, in order.
func Tokens(tagged []TaggedToken) []string {
	out := make([]string, len(tagged))
	for i, tt := range tagged {
		out[i] = tt.Token
	}
	return out
}

// Tags returns the tag of every tagged token, in order.
func Tags(tagged []TaggedToken) []string {
	out := make([]string, len(tagged))
	for i, tt := range tagged {
		out[i] = tt.Tag
	}
	return out
}
