package model

// TagsetEntry describes one tag symbol of the POS tagset.
type TagsetEntry struct {
	Tag      string `yaml:"tag" json:"tag"`
	Meaning  string `yaml:"meaning" json:"meaning"`
	Examples string `yaml:"examples" json:"examples"` // comma-separated sample words
}
