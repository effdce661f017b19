package nlp

// KeywordExtractor filters analyzer output down to content-bearing lemmas.
type KeywordExtractor struct {
	analyzer Analyzer
}

// NewKeywordExtractor creates an extractor over the given analyzer.
func NewKeywordExtractor(analyzer Analyzer) *KeywordExtractor {
	return &KeywordExtractor{analyzer: analyzer}
}

// Extract returns the lemmas of all noun and verb tokens in extraction
// order. Duplicates are kept. A text with no qualifying tokens yields an
// empty slice, never an error.
func (e *KeywordExtractor) Extract(text string) []string {
	var keywords []string
	for _, tok := range e.analyzer.Analyze(text) {
		if tok.POS == Noun || tok.POS == Verb {
			keywords = append(keywords, tok.Lemma)
		}
	}
	return keywords
}
