package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"Implicate/internal/api/middleware"
	"Implicate/internal/pkg/logger"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "ok",
				"Data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", group.AuthHandler.Register)
			authGroup.POST("/login", group.AuthHandler.Login)

			loggedIn := authGroup.Group("")
			loggedIn.Use(middleware.AuthMiddleware())
			{
				loggedIn.POST("/logout", group.AuthHandler.Logout)
				loggedIn.GET("/me", group.UserHandler.GetProfile)
				loggedIn.PUT("/password", group.AuthHandler.ChangePassword)
			}
		}

		userGroup := apiGroup.Group("/users")
		userGroup.Use(middleware.AuthMiddleware())
		{
			userGroup.GET("/profile", group.UserHandler.GetProfile)
			userGroup.PUT("/profile", group.UserHandler.UpdateProfile)
		}

		postGroup := apiGroup.Group("/posts")
		{
			// Public reads only ever see approved posts.
			postGroup.GET("", group.PostHandler.ListApproved)
			postGroup.GET("/:post_id", group.PostHandler.GetPost)
			postGroup.GET("/:post_id/replies", group.ReplyHandler.ListReplies)

			authPosts := postGroup.Group("")
			authPosts.Use(middleware.AuthMiddleware())
			{
				authPosts.POST("", group.PostHandler.CreatePost)
				authPosts.POST("/:post_id/replies", group.ReplyHandler.CreateReply)
			}
		}

		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
		{
			adminGroup.GET("/posts/pending", group.AdminHandler.ListPending)
			adminGroup.GET("/posts/:post_id", group.AdminHandler.GetPost)
			adminGroup.PUT("/posts/:post_id/approve", group.AdminHandler.ApprovePost)
			adminGroup.PUT("/posts/:post_id/reject", group.AdminHandler.RejectPost)
			adminGroup.PUT("/posts/:post_id", group.AdminHandler.UpdatePost)
			adminGroup.DELETE("/posts/:post_id", group.AdminHandler.DeletePost)
			adminGroup.POST("/posts/:post_id/attachments", group.AdminHandler.AddAttachment)
			adminGroup.DELETE("/posts/:post_id/attachments/:attachment_id", group.AdminHandler.RemoveAttachment)
		}
	}

	return r
}
