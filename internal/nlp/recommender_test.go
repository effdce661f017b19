package nlp

import "testing"

var testRules = []RecommendationRule{
	{Keyword: "экзамен", Text: "Рекомендуется начать подготовку за 2 недели, изучить материалы курса и выполнить практические задания."},
	{Keyword: "расписание", Text: "Ознакомьтесь с актуальным расписанием на портале университета или обратитесь в деканат."},
	{Keyword: "литература", Text: "Используйте рекомендованную литературу из учебного плана или обратитесь в библиотеку."},
}

func TestMatch_TriggerKeyword(t *testing.T) {
	m := NewRecommendationMatcher(testRules)

	text, ok := m.Match([]string{"экзамен", "математика"})
	if !ok {
		t.Fatal("Match() ok = false, want true")
	}
	want := "Рекомендуется начать подготовку за 2 недели, изучить материалы курса и выполнить практические задания."
	if text != want {
		t.Errorf("Match() = %q, want %q", text, want)
	}
}

func TestMatch_TriggerFiresRegardlessOfOtherKeywords(t *testing.T) {
	m := NewRecommendationMatcher(testRules)

	// "экзамен" anywhere in the keyword sequence fires its rule.
	text, ok := m.Match([]string{"математика", "сессия", "экзамен"})
	if !ok {
		t.Fatal("Match() ok = false, want true")
	}
	if text != testRules[0].Text {
		t.Errorf("Match() = %q, want exam advisory", text)
	}
}

func TestMatch_TableDefinitionOrderPrecedence(t *testing.T) {
	m := NewRecommendationMatcher(testRules)

	// "литература" comes first in the keyword sequence but "расписание" is
	// the earlier table entry, so the schedule advisory fires.
	text, ok := m.Match([]string{"литература", "расписание"})
	if !ok {
		t.Fatal("Match() ok = false, want true")
	}
	if text != testRules[1].Text {
		t.Errorf("Match() = %q, want schedule advisory (table order precedence)", text)
	}
}

func TestMatch_NoTrigger(t *testing.T) {
	m := NewRecommendationMatcher(testRules)

	if _, ok := m.Match([]string{"математика", "лекция"}); ok {
		t.Error("Match() ok = true, want false for keywords without triggers")
	}
	if _, ok := m.Match(nil); ok {
		t.Error("Match(nil) ok = true, want false")
	}
}
