package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/collabhub/internal/config"
	"github.com/yukikurage/collabhub/internal/constants"
	"github.com/yukikurage/collabhub/internal/logging"
	"github.com/yukikurage/collabhub/internal/middleware"
	"github.com/yukikurage/collabhub/internal/services"
	"github.com/yukikurage/collabhub/internal/web"
)

// NewRouter wires every route on a new gin engine.
func NewRouter(cfg *config.Config, svc *services.Services, store sessions.Store) (*gin.Engine, error) {
	r := gin.New()
	r.Use(logging.RequestLogger(), logging.Recovery())

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize handlers
	authHandler := NewAuthHandler(svc.Auth)
	feedHandler := NewFeedHandler(svc.Feed, svc.Collaboration)
	searchHandler := NewSearchHandler(svc.Search)
	projectHandler := NewProjectHandler(svc.Projects, svc.Collaboration)
	collabHandler := NewCollaborationHandler(svc.Collaboration)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Research collaboration platform is running",
		})
	})

	// Session routes (public)
	r.GET("/", authHandler.LoginPage)
	r.POST("/", authHandler.Login)
	r.GET("/logout/", authHandler.Logout)
	r.POST("/logout/", authHandler.Logout)

	// Everything else requires a session
	app := r.Group("/")
	app.Use(middleware.RequireSession())
	{
		app.GET("/feed/", feedHandler.Feed)
		app.POST("/post/create/", feedHandler.CreatePost)
		app.GET("/post/:id/collaborate/", middleware.RequireIDParam("id"), feedHandler.RequestCollaboration)
		app.POST("/post/:id/collaborate/", middleware.RequireIDParam("id"), feedHandler.RequestCollaboration)

		app.GET("/profile/:user_id/", middleware.RequireIDParam("user_id"), projectHandler.Profile)

		app.GET("/researchers/", searchHandler.Researchers)
		app.GET("/problems/", searchHandler.Problems)
		app.GET("/problem/:id/", middleware.RequireIDParam("id"), searchHandler.ProblemDetail)

		app.GET("/project/create/", projectHandler.CreateForm)
		app.POST("/project/create/", projectHandler.Create)
		app.GET("/project/:id/", middleware.RequireIDParam("id"), projectHandler.Detail)
		app.GET("/project/:id/collaborate/", middleware.RequireIDParam("id"), projectHandler.RequestCollaboration)
		app.POST("/project/:id/collaborate/", middleware.RequireIDParam("id"), projectHandler.RequestCollaboration)

		app.GET("/notifications/", collabHandler.Notifications)
		app.POST("/collaboration/:id/accept/", middleware.RequireIDParam("id"), collabHandler.Accept)
		app.POST("/collaboration/:id/reject/", middleware.RequireIDParam("id"), collabHandler.Reject)
	}

	if cfg.AdminEnabled() {
		adminHandler := NewAdminHandler(svc.Admin)

		admin := r.Group("/admin/api", gin.BasicAuth(gin.Accounts{cfg.AdminUser: cfg.AdminPassword}))
		{
			admin.POST("/fields", adminHandler.CreateField)
			admin.DELETE("/fields/:name", adminHandler.DeleteField)
			admin.POST("/subfields", adminHandler.CreateSubfield)
			admin.POST("/users", adminHandler.CreateUser)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)
			admin.POST("/problems", adminHandler.CreateProblem)
		}
	}

	return r, nil
}
