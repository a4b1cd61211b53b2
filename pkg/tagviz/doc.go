// Package tagviz tags English text with Penn Treebank part-of-speech tags
// and draws two pictures of the result: a bar chart of tag frequencies and
// a word cloud.
//
// Quick start:
//
//	t, err := tagviz.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer t.Close()
//
//	res, _ := t.Analyze("The quick fox jumps.")
//	for _, tok := range res.Original.Tagged {
//	    fmt.Println(tok.Token, tok.Tag) // The DT, quick JJ, ...
//	}
//	os.WriteFile("chart.png", res.Original.Chart.PNG, 0o644)
//
// Analyze also runs a processed pass by default: stopwords are removed, the
// remaining words are stemmed, and the stems are tagged and drawn again.
//
// A Tagviz instance is safe for concurrent use. Create once, reuse across
// requests.
package tagviz
