package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/collabhub/internal/dto"
	"github.com/yukikurage/collabhub/internal/middleware"
	"github.com/yukikurage/collabhub/internal/services"
)

type CollaborationHandler struct {
	collaboration *services.CollaborationService
}

func NewCollaborationHandler(collaboration *services.CollaborationService) *CollaborationHandler {
	return &CollaborationHandler{collaboration: collaboration}
}

// Notifications lists the requests received by the viewer
func (h *CollaborationHandler) Notifications(c *gin.Context) {
	me := viewer(c)

	notes, err := h.collaboration.ListNotifications(c.Request.Context(), me.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	render(c, http.StatusOK, "notifications.tmpl", dto.NotificationsPage{
		Viewer:   me,
		Pending:  dto.ToRequestDTOs(notes.Pending),
		Accepted: dto.ToRequestDTOs(notes.Accepted),
		Rejected: dto.ToRequestDTOs(notes.Rejected),
	})
}

func (h *CollaborationHandler) Accept(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	if _, err := h.collaboration.AcceptRequest(c.Request.Context(), userID, middleware.GetIDParam(c, "id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/notifications/")
}

func (h *CollaborationHandler) Reject(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	if _, err := h.collaboration.RejectRequest(c.Request.Context(), userID, middleware.GetIDParam(c, "id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/notifications/")
}
