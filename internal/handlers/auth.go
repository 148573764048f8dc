package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yukikurage/collabhub/internal/constants"
	"github.com/yukikurage/collabhub/internal/dto"
	apierrors "github.com/yukikurage/collabhub/internal/errors"
	"github.com/yukikurage/collabhub/internal/services"
)

// AuthHandler coordinates the session-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// LoginPage lists every user to log in as.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	users, err := h.authService.ListUsers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	render(c, http.StatusOK, "login.tmpl", dto.LoginPage{Users: dto.ToUserDTOs(users)})
}

// Login opens a session for the chosen user.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		UserID idParam `form:"user_id" json:"user_id"`
	}

	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	userID, err := req.UserID.parse()
	if err != nil {
		apierrors.NotFound(c, services.ErrUserNotFound.Error())
		return
	}

	user, err := h.authService.Login(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	session := sessions.Default(c)
	session.Set(constants.SessionKeyUserID, user.ID)
	session.Set(constants.SessionKeyUserName, user.Name)
	session.Set(constants.SessionKeyUserType, string(user.UserType))
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	log.Ctx(c.Request.Context()).Info().Uint64("user_id", user.ID).Msg("User logged in")
	c.Redirect(http.StatusFound, "/feed/")
}

// Logout removes the session.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to logout")
		return
	}

	c.Redirect(http.StatusFound, "/")
}
