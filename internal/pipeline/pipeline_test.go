package pipeline

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"uniassist/internal/config"
	"uniassist/internal/models"
	"uniassist/internal/nlp"
)

// fakeStore records calls and returns canned data.
type fakeStore struct {
	ensuredUsers    []string
	insertedQueries []string
	insertedTexts   []string
	searchCalls     int
	searchFaculty   string
	searchKeywords  []string
	searchSubjects  []string
	literature      []models.Literature
	queryID         uuid.UUID

	ensureErr error
	insertErr error
	searchErr error
}

func (f *fakeStore) EnsureUser(_ context.Context, extID string) error {
	if f.ensureErr != nil {
		return f.ensureErr
	}
	f.ensuredUsers = append(f.ensuredUsers, extID)
	return nil
}

func (f *fakeStore) InsertQuery(_ context.Context, extID, text string) (uuid.UUID, error) {
	if f.insertErr != nil {
		return uuid.Nil, f.insertErr
	}
	f.insertedQueries = append(f.insertedQueries, text)
	return f.queryID, nil
}

func (f *fakeStore) InsertResponse(_ context.Context, _ uuid.UUID, text string) error {
	f.insertedTexts = append(f.insertedTexts, text)
	return nil
}

func (f *fakeStore) SearchLiterature(_ context.Context, faculty string, keywords, subjects []string) ([]models.Literature, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	f.searchCalls++
	f.searchFaculty = faculty
	f.searchKeywords = keywords
	f.searchSubjects = subjects
	return f.literature, nil
}

const testFaculty = "Физико-математический, информационный и технологический"

func newTestPipeline(store Store) *Pipeline {
	return New(store, nlp.NewRussianAnalyzer(), config.DefaultKnowledge(), testFaculty)
}

func TestProcess_SubjectAndRecommendation(t *testing.T) {
	store := &fakeStore{queryID: uuid.New()}
	p := newTestPipeline(store)

	result, err := p.Process(context.Background(), "42", "Когда экзамен по математике?")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	// Classifier and matcher run independently; both must be populated.
	if !result.HasSubject || result.Subject != "Математика" {
		t.Errorf("Process() subject = (%q, %v), want (Математика, true)", result.Subject, result.HasSubject)
	}
	if !result.HasAdvice {
		t.Fatal("Process() advice missing, want exam advisory")
	}
	want := "Рекомендуется начать подготовку за 2 недели, изучить материалы курса и выполнить практические задания."
	if result.Advice != want {
		t.Errorf("Process() advice = %q, want %q", result.Advice, want)
	}

	if len(store.ensuredUsers) != 1 || store.ensuredUsers[0] != "42" {
		t.Errorf("Process() ensured users = %v, want [42]", store.ensuredUsers)
	}
	if len(store.insertedQueries) != 1 {
		t.Errorf("Process() inserted %d queries, want 1", len(store.insertedQueries))
	}
	if len(store.insertedTexts) != 1 || store.insertedTexts[0] != want {
		t.Errorf("Process() persisted responses = %v, want the advisory", store.insertedTexts)
	}
	if result.QueryID != store.queryID {
		t.Errorf("Process() query id = %v, want %v", result.QueryID, store.queryID)
	}
}

func TestProcess_NoKeywordsSkipsLiteratureSearch(t *testing.T) {
	store := &fakeStore{queryID: uuid.New()}
	p := newTestPipeline(store)

	result, err := p.Process(context.Background(), "42", "Когда и где?")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if store.searchCalls != 0 {
		t.Errorf("Process() hit storage %d times for literature, want 0", store.searchCalls)
	}
	if len(result.Literature) != 0 {
		t.Errorf("Process() literature = %v, want empty", result.Literature)
	}
	if result.HasSubject || result.HasAdvice {
		t.Error("Process() produced subject/advice for a query with no keywords")
	}
	if result.Outcome() != models.OutcomeUnanswered {
		t.Errorf("Outcome() = %q, want %q", result.Outcome(), models.OutcomeUnanswered)
	}

	// The query row is still written.
	if len(store.insertedQueries) != 1 {
		t.Errorf("Process() inserted %d queries, want 1", len(store.insertedQueries))
	}
	// No response row without a recommendation.
	if len(store.insertedTexts) != 0 {
		t.Errorf("Process() persisted responses = %v, want none", store.insertedTexts)
	}
}

func TestProcess_SubjectMappingExpansion(t *testing.T) {
	store := &fakeStore{queryID: uuid.New()}
	p := newTestPipeline(store)

	_, err := p.Process(context.Background(), "42", "Посоветуйте учебник по алгебре")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if store.searchCalls != 1 {
		t.Fatalf("Process() literature searches = %d, want 1", store.searchCalls)
	}
	if store.searchFaculty != testFaculty {
		t.Errorf("Process() search faculty = %q, want configured constant", store.searchFaculty)
	}
	wantSubjects := []string{"Линейная алгебра", "Алгебра"}
	if !reflect.DeepEqual(store.searchSubjects, wantSubjects) {
		t.Errorf("Process() related subjects = %v, want %v", store.searchSubjects, wantSubjects)
	}
	wantKeywords := []string{"посоветовать", "учебник", "алгебра"}
	if !reflect.DeepEqual(store.searchKeywords, wantKeywords) {
		t.Errorf("Process() search keywords = %v, want %v", store.searchKeywords, wantKeywords)
	}
}

func TestProcess_KeywordsWithoutSubject(t *testing.T) {
	store := &fakeStore{queryID: uuid.New()}
	p := newTestPipeline(store)

	result, err := p.Process(context.Background(), "42", "Где найти расписание?")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if result.HasSubject {
		t.Errorf("Process() subject = %q, want none", result.Subject)
	}
	if store.searchCalls != 1 {
		t.Fatalf("Process() literature searches = %d, want 1", store.searchCalls)
	}
	if len(store.searchSubjects) != 0 {
		t.Errorf("Process() related subjects = %v, want none", store.searchSubjects)
	}
	if !result.HasAdvice {
		t.Error("Process() advice missing, want schedule advisory")
	}
	if result.Outcome() != models.OutcomeAnswered {
		t.Errorf("Outcome() = %q, want %q", result.Outcome(), models.OutcomeAnswered)
	}
}

func TestProcess_StorageFailureAborts(t *testing.T) {
	storageErr := errors.New("connection refused")

	t.Run("ensure user", func(t *testing.T) {
		store := &fakeStore{ensureErr: storageErr}
		p := newTestPipeline(store)
		if _, err := p.Process(context.Background(), "42", "Когда экзамен?"); !errors.Is(err, storageErr) {
			t.Errorf("Process() error = %v, want wrapped storage error", err)
		}
	})

	t.Run("insert query", func(t *testing.T) {
		store := &fakeStore{insertErr: storageErr}
		p := newTestPipeline(store)
		if _, err := p.Process(context.Background(), "42", "Когда экзамен?"); !errors.Is(err, storageErr) {
			t.Errorf("Process() error = %v, want wrapped storage error", err)
		}
		if len(store.insertedTexts) != 0 {
			t.Error("Process() persisted a response after query insert failed")
		}
	})

	t.Run("literature search", func(t *testing.T) {
		store := &fakeStore{searchErr: storageErr}
		p := newTestPipeline(store)
		if _, err := p.Process(context.Background(), "42", "Когда экзамен?"); !errors.Is(err, storageErr) {
			t.Errorf("Process() error = %v, want wrapped storage error", err)
		}
		if len(store.insertedQueries) != 0 {
			t.Error("Process() persisted a query after literature search failed")
		}
	})
}

func TestProcess_LiteratureReturnedInGatewayOrder(t *testing.T) {
	lit := []models.Literature{
		{Title: "Курс математического анализа"},
		{Title: "Линейная алгебра и аналитическая геометрия"},
	}
	store := &fakeStore{queryID: uuid.New(), literature: lit}
	p := newTestPipeline(store)

	result, err := p.Process(context.Background(), "42", "Нужна литература по математике")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if !reflect.DeepEqual(result.Literature, lit) {
		t.Errorf("Process() literature = %v, want gateway order preserved", result.Literature)
	}
}
