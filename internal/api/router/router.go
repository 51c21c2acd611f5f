package router

import (
	"socialvid-go/internal/api/handler"
	"socialvid-go/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// Setup 注册所有业务路由
func Setup(
	r *gin.Engine,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	postHandler *handler.PostHandler,
	videoHandler *handler.VideoHandler,
	likeHandler *handler.LikeHandler,
	commentHandler *handler.CommentHandler,
	followHandler *handler.FollowHandler,
	notificationHandler *handler.NotificationHandler,
	storyHandler *handler.StoryHandler,
	searchHandler *handler.SearchHandler,
) {
	v1 := r.Group("/api/v1")

	// --- 认证模块 ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/social", authHandler.SocialLogin)

		authRequired := auth.Group("", middleware.AuthRequired())
		{
			authRequired.POST("/logout", authHandler.Logout)
			authRequired.GET("/me", authHandler.Me)
		}
	}

	// --- 用户模块 ---
	users := v1.Group("/users")
	{
		// 公开接口，登录后点赞状态等字段随 Token 附带
		usersPublic := users.Group("", middleware.AuthOptional())
		{
			usersPublic.GET("/:id", userHandler.GetUser)
			usersPublic.GET("/:id/posts", userHandler.GetUserPosts)
			usersPublic.GET("/:id/videos", userHandler.GetUserVideos)
			usersPublic.GET("/:id/followers", userHandler.GetFollowers)
			usersPublic.GET("/:id/following", userHandler.GetFollowing)
		}

		users.PUT("/:id", middleware.AuthRequired(), userHandler.UpdateUser)
	}

	// --- 帖子模块 ---
	posts := v1.Group("/posts")
	{
		posts.GET("/:id/comments", postHandler.GetComments)

		postsAuth := posts.Group("", middleware.AuthRequired())
		{
			postsAuth.POST("", postHandler.Create)
			postsAuth.GET("/feed", postHandler.GetFeed)
		}
	}

	// --- 视频模块 ---
	videos := v1.Group("/videos")
	{
		videos.GET("/feed", middleware.AuthOptional(), videoHandler.GetFeed)
		videos.GET("/:id/comments", videoHandler.GetComments)

		videos.POST("", middleware.AuthRequired(), videoHandler.Create)
	}

	// --- 点赞模块 ---
	likes := v1.Group("/likes", middleware.AuthRequired())
	{
		likes.POST("", likeHandler.Like)
		likes.DELETE("", likeHandler.Unlike)
		likes.POST("/toggle", likeHandler.Toggle)
	}

	// --- 评论模块 ---
	comments := v1.Group("/comments", middleware.AuthRequired())
	{
		comments.POST("", commentHandler.Create)
	}

	// --- 关注模块 ---
	follows := v1.Group("/follows", middleware.AuthRequired())
	{
		follows.POST("", followHandler.Create)
		follows.PUT("/:id", followHandler.Resolve)
	}

	// --- 通知模块 ---
	notifications := v1.Group("/notifications", middleware.AuthRequired())
	{
		notifications.GET("", notificationHandler.List)
		notifications.PUT("/:id/read", notificationHandler.MarkRead)
		notifications.GET("/unread/count", notificationHandler.UnreadCount)
	}

	// --- 快拍模块 ---
	stories := v1.Group("/stories", middleware.AuthRequired())
	{
		stories.POST("", storyHandler.Create)
		stories.GET("", storyHandler.List)
	}

	// --- 搜索模块 ---
	search := v1.Group("/search", middleware.AuthOptional())
	{
		search.GET("/posts", searchHandler.SearchPosts)
		search.GET("/videos", searchHandler.SearchVideos)
	}
}
