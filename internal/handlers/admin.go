package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yukikurage/collabhub/internal/dto"
	apierrors "github.com/yukikurage/collabhub/internal/errors"
	"github.com/yukikurage/collabhub/internal/models"
	"github.com/yukikurage/collabhub/internal/services"
)

// AdminHandler exposes the JSON API for reference data.
type AdminHandler struct {
	admin *services.AdminService
}

func NewAdminHandler(admin *services.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

func (h *AdminHandler) CreateField(c *gin.Context) {
	type CreateFieldRequest struct {
		Name string `json:"name" binding:"required"`
	}

	var req CreateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c)
		return
	}

	field, err := h.admin.CreateField(c.Request.Context(), req.Name)
	if err != nil {
		respondAdminError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FieldDTO{Name: field.Name})
}

func (h *AdminHandler) CreateSubfield(c *gin.Context) {
	type CreateSubfieldRequest struct {
		Name      string `json:"name" binding:"required"`
		FieldName string `json:"field_name" binding:"required"`
	}

	var req CreateSubfieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c)
		return
	}

	sub, err := h.admin.CreateSubfield(c.Request.Context(), req.Name, req.FieldName)
	if err != nil {
		respondAdminError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSubfieldDTO(*sub))
}

func (h *AdminHandler) CreateUser(c *gin.Context) {
	type CreateUserRequest struct {
		Name        string  `json:"name" binding:"required"`
		Email       string  `json:"email" binding:"required"`
		UserType    string  `json:"user_type"`
		Institution string  `json:"institution"`
		Country     string  `json:"country"`
		Field       string  `json:"field"`
		Rating      float64 `json:"rating"`
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c)
		return
	}

	user, err := h.admin.CreateUser(c.Request.Context(), services.CreateUserInput{
		Name:        req.Name,
		Email:       req.Email,
		UserType:    models.UserType(req.UserType),
		Institution: req.Institution,
		Country:     req.Country,
		Field:       req.Field,
		Rating:      req.Rating,
	})
	if err != nil {
		respondAdminError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

func (h *AdminHandler) CreateProblem(c *gin.Context) {
	type CreateProblemRequest struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		Severity    string `json:"severity"`
		CurrentWork string `json:"current_work"`
		DoneWork    string `json:"done_work"`
		Gaps        string `json:"gaps"`
		SubfieldID  uint64 `json:"subfield_id" binding:"required"`
	}

	var req CreateProblemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c)
		return
	}

	problem, err := h.admin.CreateProblem(c.Request.Context(), services.CreateProblemInput{
		Name:        req.Name,
		Description: req.Description,
		Severity:    models.Severity(req.Severity),
		CurrentWork: req.CurrentWork,
		DoneWork:    req.DoneWork,
		Gaps:        req.Gaps,
		SubfieldID:  req.SubfieldID,
	})
	if err != nil {
		respondAdminError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProblemDTO(*problem))
}

func (h *AdminHandler) DeleteField(c *gin.Context) {
	if err := h.admin.DeleteField(c.Request.Context(), c.Param("name")); err != nil {
		respondAdminError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.RespondWithJSON(c, http.StatusNotFound, apierrors.NewAPIError(apierrors.ErrCodeNotFound, services.ErrUserNotFound.Error()))
		return
	}

	if err := h.admin.DeleteUser(c.Request.Context(), id); err != nil {
		respondAdminError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) badRequest(c *gin.Context) {
	apierrors.RespondWithJSON(c, http.StatusBadRequest, apierrors.NewAPIError(apierrors.ErrCodeInvalidInput, "Invalid request body"))
}

func respondAdminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		apierrors.RespondWithJSON(c, http.StatusNotFound, apierrors.NewAPIError(apierrors.ErrCodeNotFound, err.Error()))
	case errors.Is(err, services.ErrConflict):
		apierrors.RespondWithJSON(c, http.StatusConflict, apierrors.NewAPIError(apierrors.ErrCodeAlreadyExists, err.Error()))
	case errors.Is(err, services.ErrInvalid):
		apierrors.RespondWithJSON(c, http.StatusBadRequest, apierrors.NewAPIError(apierrors.ErrCodeInvalidInput, err.Error()))
	default:
		log.Ctx(c.Request.Context()).Error().Err(err).Str("path", c.Request.URL.Path).Msg("Admin request failed")
		apierrors.RespondWithJSON(c, http.StatusInternalServerError, apierrors.NewAPIError(apierrors.ErrCodeInternalError, "Internal server error"))
	}
}
