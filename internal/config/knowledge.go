package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"uniassist/internal/nlp"
)

// Knowledge holds the static lookup tables driving the query pipeline:
// subject vocabulary, subject-to-catalog mapping and the recommendation
// table. Initialized once at startup and shared read-only afterwards.
type Knowledge struct {
	// Subjects is the detection vocabulary, scanned against keywords in
	// extraction order. Order here does not matter; keyword order does.
	Subjects []string `yaml:"subjects"`

	// SubjectMapping broadens literature search: canonical subject label →
	// related catalog-subject strings.
	SubjectMapping map[string][]string `yaml:"subject_mapping"`

	// Recommendations is the ordered trigger table. Definition order decides
	// precedence when several trigger words appear in one query.
	Recommendations []nlp.RecommendationRule `yaml:"recommendations"`

	// Lexicon holds extra analyzer dictionary entries on top of the built-in
	// ones.
	Lexicon []nlp.LexiconEntry `yaml:"lexicon"`
}

// RelatedSubjects returns the catalog-subject strings for a canonical
// subject label, or nil when the subject is not mapped.
func (k *Knowledge) RelatedSubjects(subject string) []string {
	if k == nil {
		return nil
	}
	return k.SubjectMapping[subject]
}

// LoadKnowledge loads the knowledge file referenced by KNOWLEDGE_FILE
// (default "knowledge.yaml"). A missing file yields the built-in defaults;
// sections present in the file replace the corresponding defaults wholesale.
func LoadKnowledge() (*Knowledge, error) {
	k := DefaultKnowledge()

	path := getEnv("KNOWLEDGE_FILE", "knowledge.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return k, nil
		}
		return nil, err
	}

	var file Knowledge
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	if len(file.Subjects) > 0 {
		k.Subjects = file.Subjects
	}
	if len(file.SubjectMapping) > 0 {
		k.SubjectMapping = file.SubjectMapping
	}
	if len(file.Recommendations) > 0 {
		k.Recommendations = file.Recommendations
	}
	k.Lexicon = append(k.Lexicon, file.Lexicon...)

	return k, nil
}

// DefaultKnowledge returns the compiled-in lookup tables.
func DefaultKnowledge() *Knowledge {
	return &Knowledge{
		Subjects: []string{
			"математика",
			"информатика",
			"физика",
			"программирование",
			"алгебра",
			"анализ",
			"дискретная",
		},
		SubjectMapping: map[string][]string{
			"Математика":       {"Линейная алгебра", "Математический анализ", "Алгебра"},
			"Информатика":      {"Информатика", "Программирование", "Базы данных"},
			"Физика":           {"Физика"},
			"Программирование": {"Программирование", "Информатика"},
			"Алгебра":          {"Линейная алгебра", "Алгебра"},
			"Анализ":           {"Математический анализ"},
			"Дискретная":       {"Дискретная математика"},
		},
		Recommendations: []nlp.RecommendationRule{
			{Keyword: "экзамен", Text: "Рекомендуется начать подготовку за 2 недели, изучить материалы курса и выполнить практические задания."},
			{Keyword: "домашнее задание", Text: "Проверьте задания в системе, обратитесь к преподавателю за разъяснениями."},
			{Keyword: "расписание", Text: "Ознакомьтесь с актуальным расписанием на портале университета или обратитесь в деканат."},
			{Keyword: "консультация", Text: "Запишитесь на консультацию через систему или свяжитесь с преподавателем напрямую."},
			{Keyword: "материалы", Text: "Скачайте учебные материалы из системы e-learning или запросите их у преподавателя."},
			{Keyword: "практика", Text: "Для закрепления материала выполните практические задания и проверьте решения на платформе."},
			{Keyword: "мотивация", Text: "Ставьте небольшие цели, делите задачи на части и вознаграждайте себя за успехи!"},
			{Keyword: "проект", Text: "Составьте план работы над проектом, обсудите этапы с руководителем и следуйте дедлайнам."},
			{Keyword: "литература", Text: "Используйте рекомендованную литературу из учебного плана или обратитесь в библиотеку."},
			{Keyword: "группа", Text: "Обсудите задание с одногруппниками или присоединитесь к учебной группе для совместной подготовки."},
		},
	}
}
