package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/collabhub/internal/dto"
	apierrors "github.com/yukikurage/collabhub/internal/errors"
	"github.com/yukikurage/collabhub/internal/middleware"
	"github.com/yukikurage/collabhub/internal/services"
)

type ProjectHandler struct {
	projects      *services.ProjectService
	collaboration *services.CollaborationService
}

func NewProjectHandler(projects *services.ProjectService, collaboration *services.CollaborationService) *ProjectHandler {
	return &ProjectHandler{
		projects:      projects,
		collaboration: collaboration,
	}
}

func profileURL(userID uint64) string {
	return fmt.Sprintf("/profile/%d/", userID)
}

// Profile shows a user and the projects they own
func (h *ProjectHandler) Profile(c *gin.Context) {
	me := viewer(c)

	profile, err := h.projects.GetProfile(c.Request.Context(), middleware.GetIDParam(c, "user_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	render(c, http.StatusOK, "profile.tmpl", dto.ProfilePage{
		Viewer:    me,
		User:      dto.ToUserDTO(*profile.User),
		Projects:  dto.ToProjectDTOs(profile.Projects),
		IsOwnPage: profile.User.ID == me.ID,
	})
}

// CreateForm lists the choices for a new project
func (h *ProjectHandler) CreateForm(c *gin.Context) {
	me := viewer(c)

	opts, err := h.projects.FormOptions(c.Request.Context(), me.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	render(c, http.StatusOK, "project_form.tmpl", dto.ProjectFormPage{
		Viewer:      me,
		Fields:      dto.ToFieldDTOs(opts.Fields),
		Subfields:   dto.ToSubfieldDTOs(opts.Subfields),
		Researchers: dto.ToUserDTOs(opts.Researchers),
	})
}

// Create creates a project owned by the viewer
func (h *ProjectHandler) Create(c *gin.Context) {
	type CreateProjectRequest struct {
		Title         string    `form:"title" json:"title"`
		Description   string    `form:"description" json:"description"`
		Field         string    `form:"field" json:"field"`
		Subfield      idParam   `form:"subfield" json:"subfield"`
		VacancyStatus checkbox  `form:"vacancy_status" json:"vacancy_status"`
		Collaborators []idParam `form:"collaborators" json:"collaborators"`
	}

	var req CreateProjectRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	subfieldID, err := req.Subfield.parse()
	if err != nil {
		apierrors.NotFound(c, services.ErrSubfieldNotFound.Error())
		return
	}

	collaboratorIDs := make([]uint64, 0, len(req.Collaborators))
	for _, raw := range req.Collaborators {
		if raw == "" {
			continue
		}
		id, err := raw.parse()
		if err != nil {
			apierrors.NotFound(c, services.ErrUserNotFound.Error())
			return
		}
		collaboratorIDs = append(collaboratorIDs, id)
	}

	userID, _ := middleware.GetUserID(c)
	project, err := h.projects.CreateProject(c.Request.Context(), services.CreateProjectInput{
		OwnerID:         userID,
		Title:           req.Title,
		Description:     req.Description,
		FieldName:       req.Field,
		SubfieldID:      subfieldID,
		VacancyStatus:   bool(req.VacancyStatus),
		CollaboratorIDs: collaboratorIDs,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, profileURL(project.OwnerID))
}

// Detail redirects to the profile of the project owner
func (h *ProjectHandler) Detail(c *gin.Context) {
	project, err := h.projects.GetProject(c.Request.Context(), middleware.GetIDParam(c, "id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, profileURL(project.OwnerID))
}

// RequestCollaboration asks the owner of a project to collaborate
func (h *ProjectHandler) RequestCollaboration(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	outcome, err := h.collaboration.RequestProjectCollaboration(c.Request.Context(), userID, middleware.GetIDParam(c, "id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, profileURL(outcome.ReceiverID))
}
