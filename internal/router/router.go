package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/blog-api/config"
	"github.com/ikkim/blog-api/internal/app/controller"
	"github.com/ikkim/blog-api/internal/app/service"
	"github.com/ikkim/blog-api/internal/middleware"
)

type Router struct {
	postController *controller.PostController
	tagController  *controller.TagController
	feedController *controller.FeedController
	postService    service.PostService
	config         *config.Config
}

func NewRouter(
	postController *controller.PostController,
	tagController *controller.TagController,
	feedController *controller.FeedController,
	postService service.PostService,
	cfg *config.Config,
) *Router {
	return &Router{
		postController: postController,
		tagController:  tagController,
		feedController: feedController,
		postService:    postService,
		config:         cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the Simple Blog API!",
		})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"store":  r.postService.Stats(),
		})
	})

	api := router.Group("/api")
	{
		posts := api.Group("/posts")
		{
			posts.GET("", r.postController.ListPosts)
			posts.POST("", r.postController.CreatePost)
			posts.GET("/export", r.postController.ExportPosts)
			posts.GET("/tag/:tagName", r.postController.ListPostsByTag)
			posts.GET("/:id", r.postController.GetPost)
			posts.DELETE("/:id", r.postController.DeletePost)
		}

		api.GET("/tags", r.tagController.ListTags)
	}

	router.GET("/ws/posts", r.feedController.Subscribe)

	return router
}
