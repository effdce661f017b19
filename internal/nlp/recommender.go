package nlp

// RecommendationRule pairs a trigger keyword with its canned advisory text.
type RecommendationRule struct {
	Keyword string `yaml:"keyword"`
	Text    string `yaml:"text"`
}

// RecommendationMatcher maps keyword sequences to advisory texts via a
// fixed, ordered trigger table.
type RecommendationMatcher struct {
	rules []RecommendationRule
}

// NewRecommendationMatcher creates a matcher over the given rules.
// Rule order is significant and preserved.
func NewRecommendationMatcher(rules []RecommendationRule) *RecommendationMatcher {
	return &RecommendationMatcher{rules: rules}
}

// Match returns the advisory text of the first rule whose trigger keyword is
// present in the keyword sequence. Precedence follows table definition
// order, not keyword position: with several trigger words in one query the
// earliest table entry fires. ok is false when no trigger matched.
func (m *RecommendationMatcher) Match(keywords []string) (text string, ok bool) {
	present := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		present[kw] = struct{}{}
	}
	for _, rule := range m.rules {
		if _, found := present[rule.Keyword]; found {
			return rule.Text, true
		}
	}
	return "", false
}
