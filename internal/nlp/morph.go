// Package nlp implements the query interpretation pipeline: morphological
// normalization, keyword extraction, subject classification and
// recommendation matching for Russian student queries.
package nlp

import (
	"fmt"
	"strings"
	"unicode"
)

// PartOfSpeech is the coarse tag assigned to a token.
type PartOfSpeech string

const (
	Noun  PartOfSpeech = "NOUN"
	Verb  PartOfSpeech = "VERB"
	Other PartOfSpeech = "OTHER"
)

// Token is a normalized span of the input text. Tokens are produced per
// request and discarded after keyword extraction.
type Token struct {
	Text  string
	Lemma string
	POS   PartOfSpeech
}

// Analyzer turns raw text into a sequence of normalized tokens.
// Implementations must be pure: no I/O, no state across calls.
type Analyzer interface {
	Analyze(text string) []Token
}

// NewAnalyzer returns the analyzer for the given language code.
func NewAnalyzer(lang string) (Analyzer, error) {
	switch lang {
	case "ru":
		return NewRussianAnalyzer(), nil
	default:
		return nil, fmt.Errorf("unsupported analyzer language %q", lang)
	}
}

type lexeme struct {
	lemma string
	pos   PartOfSpeech
}

// RussianAnalyzer is a dictionary-backed lemmatizer with suffix heuristics
// for out-of-dictionary words. The built-in lexicon carries the academic
// domain vocabulary; Extend adds entries from the knowledge file.
type RussianAnalyzer struct {
	forms         map[string]lexeme
	functionWords map[string]struct{}
}

// NewRussianAnalyzer creates an analyzer loaded with the built-in lexicon.
func NewRussianAnalyzer() *RussianAnalyzer {
	a := &RussianAnalyzer{
		forms:         make(map[string]lexeme),
		functionWords: make(map[string]struct{}, len(functionWords)),
	}
	for _, w := range functionWords {
		a.functionWords[w] = struct{}{}
	}
	a.Extend(builtinLexicon)
	return a
}

// LexiconEntry is one dictionary word with its inflected forms.
type LexiconEntry struct {
	Lemma string       `yaml:"lemma"`
	POS   PartOfSpeech `yaml:"pos"`
	Forms []string     `yaml:"forms"`
}

// Extend registers additional lexicon entries. The lemma itself is always
// registered as a form. Later entries win on form collisions.
func (a *RussianAnalyzer) Extend(entries []LexiconEntry) {
	for _, e := range entries {
		lex := lexeme{lemma: strings.ToLower(e.Lemma), pos: e.POS}
		a.forms[lex.lemma] = lex
		for _, f := range e.Forms {
			a.forms[strings.ToLower(f)] = lex
		}
	}
}

// Analyze tokenizes text and tags every word with its lemma and part of
// speech. Words are lower-cased before lookup.
func (a *RussianAnalyzer) Analyze(text string) []Token {
	var tokens []Token
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		word := strings.Trim(current.String(), "-")
		current.Reset()
		if word == "" {
			return
		}
		lemma, pos := a.analyzeWord(word)
		tokens = append(tokens, Token{Text: word, Lemma: lemma, POS: pos})
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' {
			current.WriteRune(unicode.ToLower(r))
		} else {
			flush()
		}
	}
	flush()

	return tokens
}

// analyzeWord resolves the dictionary form and part of speech for a single
// lower-cased word. Dictionary first, then suffix heuristics.
func (a *RussianAnalyzer) analyzeWord(word string) (string, PartOfSpeech) {
	if _, ok := a.functionWords[word]; ok {
		return word, Other
	}
	if lex, ok := a.forms[word]; ok {
		return lex.lemma, lex.pos
	}
	if isNumericOnly(word) {
		return word, Other
	}
	if lemma, ok := guessVerb(word); ok {
		return lemma, Verb
	}
	if hasAdjectiveEnding(word) {
		return word, Other
	}
	if isCyrillic(word) && runeLen(word) >= 3 {
		return stripNounEnding(word), Noun
	}
	return word, Other
}

func isNumericOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '-' {
			return false
		}
	}
	return true
}

func isCyrillic(s string) bool {
	for _, r := range s {
		if !unicode.Is(unicode.Cyrillic, r) && r != '-' {
			return false
		}
	}
	return true
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// verbSuffixes maps finite verb endings to the likely infinitive ending.
var verbSuffixes = []struct{ suffix, infinitive string }{
	{"аться", "аться"},
	{"иться", "иться"},
	{"ается", "аться"},
	{"яется", "яться"},
	{"ится", "иться"},
	{"ают", "ать"},
	{"яют", "ять"},
	{"уют", "овать"},
	{"ает", "ать"},
	{"яет", "ять"},
	{"еет", "еть"},
	{"ует", "овать"},
	{"ишь", "ить"},
	{"ите", "ить"},
	{"ить", "ить"},
	{"ать", "ать"},
	{"ять", "ять"},
	{"еть", "еть"},
	{"уть", "уть"},
	{"ыть", "ыть"},
	{"ти", "ти"},
	{"чь", "чь"},
}

// guessVerb recognizes common verb endings and maps them to an infinitive.
// Best-effort fallback; the lexicon carries the domain verbs.
func guessVerb(word string) (string, bool) {
	for _, vs := range verbSuffixes {
		if strings.HasSuffix(word, vs.suffix) {
			return strings.TrimSuffix(word, vs.suffix) + vs.infinitive, true
		}
	}
	return "", false
}

var adjectiveEndings = []string{
	"ый", "ий", "ой", "ая", "яя", "ое", "ее", "ые", "ие",
	"ого", "его", "ому", "ему", "ыми", "ими", "ым", "им",
}

func hasAdjectiveEnding(word string) bool {
	if runeLen(word) < 5 {
		return false
	}
	for _, e := range adjectiveEndings {
		if strings.HasSuffix(word, e) {
			return true
		}
	}
	return false
}

// nounRules rewrites common case endings toward the nominative.
// Applied in order; first match wins. Best-effort fallback for words the
// lexicon does not cover.
var nounRules = []struct{ suffix, replacement string }{
	{"нии", "ние"},
	{"нию", "ние"},
	{"нием", "ние"},
	{"ний", "ние"},
	{"ии", "ия"},
	{"ию", "ия"},
	{"ией", "ия"},
	{"ке", "ка"},
	{"ку", "ка"},
	{"кой", "ка"},
	{"ки", "ка"},
	{"ге", "га"},
	{"гу", "га"},
	{"гой", "га"},
	{"ами", ""},
	{"ями", ""},
	{"ах", ""},
	{"ях", ""},
	{"ам", ""},
	{"ям", ""},
	{"ов", ""},
	{"ев", ""},
	{"ом", ""},
	{"ем", ""},
	{"ой", "а"},
	{"ою", "а"},
	{"ей", "а"},
	{"е", ""},
	{"у", ""},
	{"ю", ""},
	{"ы", ""},
	{"и", ""},
}

func stripNounEnding(word string) string {
	for _, r := range nounRules {
		if strings.HasSuffix(word, r.suffix) {
			stem := strings.TrimSuffix(word, r.suffix)
			if runeLen(stem) >= 3 {
				return stem + r.replacement
			}
		}
	}
	return word
}
