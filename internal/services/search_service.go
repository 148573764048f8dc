package services

import (
	"context"
	"fmt"

	"github.com/yukikurage/collabhub/internal/models"
	"github.com/yukikurage/collabhub/internal/repository"
)

// SearchService answers researcher and problem searches.
type SearchService struct {
	store *repository.Store
}

func NewSearchService(store *repository.Store) *SearchService {
	return &SearchService{store: store}
}

// ResearcherQuery holds optional substring filters. Empty values are not applied.
type ResearcherQuery struct {
	Field       string
	Country     string
	Institution string
}

// ResearcherSearch is the result of a researcher search.
type ResearcherSearch struct {
	Researchers []models.User
	Fields      []models.Field
	Searched    bool
}

// SearchResearchers lists researchers matching every supplied filter.
func (s *SearchService) SearchResearchers(ctx context.Context, q ResearcherQuery) (*ResearcherSearch, error) {
	researchers, err := s.store.Users().ListResearchers(ctx, repository.ResearcherFilter{
		Field:       q.Field,
		Country:     q.Country,
		Institution: q.Institution,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search researchers: %w", err)
	}

	fields, err := s.store.Catalog().ListFields(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list fields: %w", err)
	}

	return &ResearcherSearch{
		Researchers: researchers,
		Fields:      fields,
		Searched:    q.Field != "" || q.Country != "" || q.Institution != "",
	}, nil
}

// ProblemSearch is the result of a problem search.
type ProblemSearch struct {
	Problems   []models.Problem
	Fields     []models.Field
	Subfields  []models.Subfield
	Field      string
	SubfieldID *uint64
	Searched   bool
}

// SearchProblems lists problems of a field, narrowed to one subfield when subfieldID is set.
// Nothing is searched without a field.
func (s *SearchService) SearchProblems(ctx context.Context, fieldName string, subfieldID *uint64) (*ProblemSearch, error) {
	fields, err := s.store.Catalog().ListFields(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list fields: %w", err)
	}

	result := &ProblemSearch{
		Problems:   []models.Problem{},
		Fields:     fields,
		Subfields:  []models.Subfield{},
		Field:      fieldName,
		SubfieldID: subfieldID,
	}
	if fieldName == "" {
		return result, nil
	}

	problems, err := s.store.Catalog().ListProblems(ctx, repository.ProblemFilter{
		FieldName:  fieldName,
		SubfieldID: subfieldID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search problems: %w", err)
	}

	subfields, err := s.store.Catalog().ListSubfields(ctx, fieldName)
	if err != nil {
		return nil, fmt.Errorf("failed to list subfields: %w", err)
	}

	result.Problems = problems
	result.Subfields = subfields
	result.Searched = true
	return result, nil
}

// ProblemDetail is a problem with the projects and people working on its subfield.
type ProblemDetail struct {
	Problem            *models.Problem
	RelatedProjects    []models.Project
	WorkingResearchers []models.User
}

// GetProblemDetail loads a problem with related projects and their distinct owners.
func (s *SearchService) GetProblemDetail(ctx context.Context, problemID uint64) (*ProblemDetail, error) {
	problem, err := s.store.Catalog().FindProblem(ctx, problemID)
	if err != nil {
		return nil, lookupErr(err, ErrProblemNotFound, "problem")
	}

	projects, err := s.store.Projects().ListBySubfield(ctx, problem.SubfieldID)
	if err != nil {
		return nil, fmt.Errorf("failed to list related projects: %w", err)
	}

	owners, err := s.store.Projects().ListOwnersBySubfield(ctx, problem.SubfieldID)
	if err != nil {
		return nil, fmt.Errorf("failed to list working researchers: %w", err)
	}

	return &ProblemDetail{
		Problem:            problem,
		RelatedProjects:    projects,
		WorkingResearchers: owners,
	}, nil
}
