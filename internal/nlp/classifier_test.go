package nlp

import "testing"

var testVocabulary = []string{
	"математика", "информатика", "физика", "программирование",
	"алгебра", "анализ", "дискретная",
}

func TestClassify_FirstKeywordWins(t *testing.T) {
	c := NewSubjectClassifier(testVocabulary)

	tests := []struct {
		name     string
		keywords []string
		want     string
		wantOK   bool
	}{
		{
			name:     "single subject",
			keywords: []string{"экзамен", "математика"},
			want:     "Математика",
			wantOK:   true,
		},
		{
			name:     "earlier keyword position wins",
			keywords: []string{"физика", "математика"},
			want:     "Физика",
			wantOK:   true,
		},
		{
			name:     "vocabulary order does not matter",
			keywords: []string{"анализ", "алгебра"},
			want:     "Анализ",
			wantOK:   true,
		},
		{
			name:     "no subject keyword",
			keywords: []string{"экзамен", "расписание"},
			wantOK:   false,
		},
		{
			name:     "empty keywords",
			keywords: nil,
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Classify(tt.keywords)
			if ok != tt.wantOK {
				t.Fatalf("Classify(%v) ok = %v, want %v", tt.keywords, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Classify(%v) = %q, want %q", tt.keywords, got, tt.want)
			}
		})
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"математика", "Математика"},
		{"алгебра", "Алгебра"},
		{"", ""},
		{"Физика", "Физика"},
	}

	for _, tt := range tests {
		if got := Capitalize(tt.in); got != tt.want {
			t.Errorf("Capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
