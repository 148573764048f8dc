package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/collabhub/internal/dto"
	"github.com/yukikurage/collabhub/internal/middleware"
	"github.com/yukikurage/collabhub/internal/services"
)

type SearchHandler struct {
	search *services.SearchService
}

func NewSearchHandler(search *services.SearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

// Researchers searches researchers by field, country and institution
func (h *SearchHandler) Researchers(c *gin.Context) {
	query := services.ResearcherQuery{
		Field:       c.Query("field"),
		Country:     c.Query("country"),
		Institution: c.Query("institution"),
	}

	result, err := h.search.SearchResearchers(c.Request.Context(), query)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	render(c, http.StatusOK, "researchers.tmpl", dto.ResearcherSearchPage{
		Viewer:      viewer(c),
		Researchers: dto.ToUserDTOs(result.Researchers),
		Fields:      dto.ToFieldDTOs(result.Fields),
		Field:       query.Field,
		Country:     query.Country,
		Institution: query.Institution,
		Searched:    result.Searched,
	})
}

// Problems searches problems by field and optional subfield
func (h *SearchHandler) Problems(c *gin.Context) {
	result, err := h.search.SearchProblems(c.Request.Context(), c.Query("field"), optionalID(c.Query("subfield")))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	render(c, http.StatusOK, "problems.tmpl", dto.ProblemSearchPage{
		Viewer:     viewer(c),
		Problems:   dto.ToProblemDTOs(result.Problems),
		Fields:     dto.ToFieldDTOs(result.Fields),
		Subfields:  dto.ToSubfieldDTOs(result.Subfields),
		Field:      result.Field,
		SubfieldID: result.SubfieldID,
		Searched:   result.Searched,
	})
}

// ProblemDetail shows a problem with related projects and researchers
func (h *SearchHandler) ProblemDetail(c *gin.Context) {
	detail, err := h.search.GetProblemDetail(c.Request.Context(), middleware.GetIDParam(c, "id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	render(c, http.StatusOK, "problem_detail.tmpl", dto.ProblemDetailPage{
		Viewer:             viewer(c),
		Problem:            dto.ToProblemDTO(*detail.Problem),
		FieldName:          detail.Problem.Subfield.FieldName,
		RelatedProjects:    dto.ToProjectDTOs(detail.RelatedProjects),
		WorkingResearchers: dto.ToUserDTOs(detail.WorkingResearchers),
	})
}
