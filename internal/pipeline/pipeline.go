// Package pipeline composes keyword extraction, subject classification,
// recommendation matching and literature search into one synchronous call
// per student query.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"uniassist/internal/config"
	"uniassist/internal/models"
	"uniassist/internal/nlp"
)

// Store is the persistence contract the pipeline depends on.
type Store interface {
	EnsureUser(ctx context.Context, extID string) error
	InsertQuery(ctx context.Context, extID, text string) (uuid.UUID, error)
	InsertResponse(ctx context.Context, queryID uuid.UUID, text string) error
	SearchLiterature(ctx context.Context, faculty string, keywords, subjects []string) ([]models.Literature, error)
}

// Result is the outcome of processing one query. Advice and Subject are
// optional: the Has flags distinguish "no match" from an empty value.
type Result struct {
	QueryID    uuid.UUID
	Advice     string
	HasAdvice  bool
	Subject    string
	HasSubject bool
	Literature []models.Literature
}

// Outcome returns the metrics label for this result.
func (r *Result) Outcome() string {
	if r.HasAdvice {
		return models.OutcomeAnswered
	}
	return models.OutcomeUnanswered
}

// Pipeline orchestrates query processing. It is stateless between calls;
// the lookup tables it holds are immutable after construction and safe for
// concurrent use.
type Pipeline struct {
	store      Store
	extractor  *nlp.KeywordExtractor
	classifier *nlp.SubjectClassifier
	matcher    *nlp.RecommendationMatcher
	knowledge  *config.Knowledge
	faculty    string
}

// New wires a pipeline from the analyzer, the knowledge tables and the
// persistence gateway. faculty scopes every literature lookup.
func New(store Store, analyzer nlp.Analyzer, knowledge *config.Knowledge, faculty string) *Pipeline {
	return &Pipeline{
		store:      store,
		extractor:  nlp.NewKeywordExtractor(analyzer),
		classifier: nlp.NewSubjectClassifier(knowledge.Subjects),
		matcher:    nlp.NewRecommendationMatcher(knowledge.Recommendations),
		knowledge:  knowledge,
		faculty:    faculty,
	}
}

// Process runs one query through the full pipeline: ensure the user exists,
// extract keywords, classify the subject, match a recommendation, search
// literature, then persist the query and, when a recommendation fired, the
// response. Any storage failure aborts the whole request; the query and
// response inserts commit independently.
func (p *Pipeline) Process(ctx context.Context, userExtID, text string) (*Result, error) {
	if err := p.store.EnsureUser(ctx, userExtID); err != nil {
		return nil, fmt.Errorf("ensure user %s: %w", userExtID, err)
	}

	keywords := p.extractor.Extract(text)

	result := &Result{}
	result.Subject, result.HasSubject = p.classifier.Classify(keywords)
	result.Advice, result.HasAdvice = p.matcher.Match(keywords)

	literature, err := p.searchLiterature(ctx, keywords, result.Subject, result.HasSubject)
	if err != nil {
		return nil, fmt.Errorf("search literature: %w", err)
	}
	result.Literature = literature

	queryID, err := p.store.InsertQuery(ctx, userExtID, text)
	if err != nil {
		return nil, fmt.Errorf("insert query: %w", err)
	}
	result.QueryID = queryID

	if result.HasAdvice {
		if err := p.store.InsertResponse(ctx, queryID, result.Advice); err != nil {
			return nil, fmt.Errorf("insert response: %w", err)
		}
	}

	return result, nil
}

// searchLiterature builds and executes the catalog lookup. With no keywords
// and no subject it returns nothing without touching storage; an
// unconstrained full-table fetch is never issued. A subject missing from
// the mapping contributes no subject conditions.
func (p *Pipeline) searchLiterature(ctx context.Context, keywords []string, subject string, hasSubject bool) ([]models.Literature, error) {
	if len(keywords) == 0 && !hasSubject {
		return nil, nil
	}

	var related []string
	if hasSubject {
		related = p.knowledge.RelatedSubjects(subject)
	}

	return p.store.SearchLiterature(ctx, p.faculty, keywords, related)
}
