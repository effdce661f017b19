package nlp

import (
	"reflect"
	"testing"
)

func TestNewAnalyzer(t *testing.T) {
	if _, err := NewAnalyzer("ru"); err != nil {
		t.Fatalf("NewAnalyzer(ru) error = %v", err)
	}
	if _, err := NewAnalyzer("en"); err == nil {
		t.Error("NewAnalyzer(en) expected error for unsupported language")
	}
}

func TestAnalyze_Tokenization(t *testing.T) {
	a := NewRussianAnalyzer()

	tokens := a.Analyze("Когда экзамен по математике?")
	words := make([]string, len(tokens))
	for i, tok := range tokens {
		words[i] = tok.Text
	}

	want := []string{"когда", "экзамен", "по", "математике"}
	if !reflect.DeepEqual(words, want) {
		t.Errorf("Analyze() tokens = %v, want %v", words, want)
	}
}

func TestAnalyze_LemmaAndPOS(t *testing.T) {
	a := NewRussianAnalyzer()

	tests := []struct {
		word  string
		lemma string
		pos   PartOfSpeech
	}{
		{"математике", "математика", Noun},
		{"экзамены", "экзамен", Noun},
		{"физику", "физика", Noun},
		{"программировании", "программирование", Noun},
		{"расписании", "расписание", Noun},
		{"консультацию", "консультация", Noun},
		{"группой", "группа", Noun},
		{"сдам", "сдать", Verb},
		{"готовлюсь", "готовиться", Verb},
		{"учишься", "учиться", Verb},
		{"когда", "когда", Other},
		{"по", "по", Other},
		{"не", "не", Other},
	}

	for _, tt := range tests {
		tokens := a.Analyze(tt.word)
		if len(tokens) != 1 {
			t.Fatalf("Analyze(%q) returned %d tokens, want 1", tt.word, len(tokens))
		}
		if tokens[0].Lemma != tt.lemma {
			t.Errorf("Analyze(%q) lemma = %q, want %q", tt.word, tokens[0].Lemma, tt.lemma)
		}
		if tokens[0].POS != tt.pos {
			t.Errorf("Analyze(%q) pos = %q, want %q", tt.word, tokens[0].POS, tt.pos)
		}
	}
}

func TestAnalyze_CaseInsensitive(t *testing.T) {
	a := NewRussianAnalyzer()

	tokens := a.Analyze("ЭКЗАМЕН")
	if len(tokens) != 1 {
		t.Fatalf("Analyze() returned %d tokens, want 1", len(tokens))
	}
	if tokens[0].Lemma != "экзамен" || tokens[0].POS != Noun {
		t.Errorf("Analyze(ЭКЗАМЕН) = (%q, %q), want (экзамен, NOUN)", tokens[0].Lemma, tokens[0].POS)
	}
}

func TestAnalyze_NumericTokens(t *testing.T) {
	a := NewRussianAnalyzer()

	tokens := a.Analyze("2026")
	if len(tokens) != 1 {
		t.Fatalf("Analyze() returned %d tokens, want 1", len(tokens))
	}
	if tokens[0].POS != Other {
		t.Errorf("Analyze(2026) pos = %q, want OTHER", tokens[0].POS)
	}
}

func TestAnalyze_AdjectivesAreNotKeywordMaterial(t *testing.T) {
	a := NewRussianAnalyzer()

	for _, word := range []string{"дискретная", "линейный", "практические"} {
		tokens := a.Analyze(word)
		if len(tokens) != 1 {
			t.Fatalf("Analyze(%q) returned %d tokens, want 1", word, len(tokens))
		}
		if tokens[0].POS != Other {
			t.Errorf("Analyze(%q) pos = %q, want OTHER", word, tokens[0].POS)
		}
	}
}

func TestAnalyze_UnknownVerbSuffix(t *testing.T) {
	a := NewRussianAnalyzer()

	tokens := a.Analyze("штудировать")
	if len(tokens) != 1 {
		t.Fatalf("Analyze() returned %d tokens, want 1", len(tokens))
	}
	if tokens[0].POS != Verb {
		t.Errorf("Analyze(штудировать) pos = %q, want VERB", tokens[0].POS)
	}
}

func TestAnalyze_EmptyText(t *testing.T) {
	a := NewRussianAnalyzer()

	if tokens := a.Analyze(""); len(tokens) != 0 {
		t.Errorf("Analyze(\"\") = %v, want empty", tokens)
	}
	if tokens := a.Analyze("?! ... —"); len(tokens) != 0 {
		t.Errorf("Analyze(punctuation) = %v, want empty", tokens)
	}
}

func TestExtend(t *testing.T) {
	a := NewRussianAnalyzer()
	a.Extend([]LexiconEntry{
		{Lemma: "коллоквиум", POS: Noun, Forms: []string{"коллоквиума", "коллоквиуме"}},
	})

	tokens := a.Analyze("коллоквиуме")
	if len(tokens) != 1 {
		t.Fatalf("Analyze() returned %d tokens, want 1", len(tokens))
	}
	if tokens[0].Lemma != "коллоквиум" || tokens[0].POS != Noun {
		t.Errorf("Analyze(коллоквиуме) = (%q, %q), want (коллоквиум, NOUN)", tokens[0].Lemma, tokens[0].POS)
	}
}
