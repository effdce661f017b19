package nlp

import (
	"strings"
	"unicode"
)

// SubjectClassifier assigns a single academic subject to a keyword sequence
// using a fixed, ordered vocabulary.
type SubjectClassifier struct {
	vocabulary map[string]struct{}
}

// NewSubjectClassifier creates a classifier over the given subject
// vocabulary (lower-case lemmas).
func NewSubjectClassifier(vocabulary []string) *SubjectClassifier {
	vocab := make(map[string]struct{}, len(vocabulary))
	for _, s := range vocabulary {
		vocab[strings.ToLower(s)] = struct{}{}
	}
	return &SubjectClassifier{vocabulary: vocab}
}

// Classify scans keywords in extraction order and returns the canonical
// display form of the first one found in the vocabulary. Earlier keyword
// position always wins; no scoring. ok is false when nothing matched.
func (c *SubjectClassifier) Classify(keywords []string) (subject string, ok bool) {
	for _, kw := range keywords {
		if _, found := c.vocabulary[kw]; found {
			return Capitalize(kw), true
		}
	}
	return "", false
}

// Capitalize upper-cases the first rune, the canonical display form for
// subject labels.
func Capitalize(s string) string {
	for i, r := range s {
		return string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return s
}
