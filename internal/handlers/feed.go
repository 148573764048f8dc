package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/collabhub/internal/dto"
	apierrors "github.com/yukikurage/collabhub/internal/errors"
	"github.com/yukikurage/collabhub/internal/middleware"
	"github.com/yukikurage/collabhub/internal/services"
)

type FeedHandler struct {
	feed          *services.FeedService
	collaboration *services.CollaborationService
}

func NewFeedHandler(feed *services.FeedService, collaboration *services.CollaborationService) *FeedHandler {
	return &FeedHandler{
		feed:          feed,
		collaboration: collaboration,
	}
}

// Feed shows every post and the viewer's pending request count
func (h *FeedHandler) Feed(c *gin.Context) {
	ctx := c.Request.Context()
	me := viewer(c)

	posts, err := h.feed.ListFeed(ctx)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	pending, err := h.feed.CountPendingRequests(ctx, me.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	render(c, http.StatusOK, "feed.tmpl", dto.FeedPage{
		Viewer:          me,
		Posts:           dto.ToPostDTOs(posts),
		PendingRequests: pending,
	})
}

// CreatePost publishes a post as the viewer
func (h *FeedHandler) CreatePost(c *gin.Context) {
	type CreatePostRequest struct {
		Content string `form:"content" json:"content"`
	}

	var req CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	userID, _ := middleware.GetUserID(c)
	if _, err := h.feed.CreatePost(c.Request.Context(), userID, req.Content); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/feed/")
}

// RequestCollaboration asks the author of a post to collaborate
func (h *FeedHandler) RequestCollaboration(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	postID := middleware.GetIDParam(c, "id")

	if _, err := h.collaboration.RequestPostCollaboration(c.Request.Context(), userID, postID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/feed/")
}
