package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "goblog/internal/app"
	"goblog/internal/bootstrap"
	"goblog/internal/cache"
	"goblog/internal/platform/rabbitmq"
	"goblog/internal/repository"
	"goblog/internal/schema"
	"goblog/internal/transport/http/handler"
	"goblog/internal/transport/http/middleware"
	"goblog/web"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)

	userRepo := repository.NewUserRepository(app.DB)
	postRepo := repository.NewPostRepository(app.DB)
	homeCache := cache.NewHomeCache(app.Redis, time.Duration(app.Config.Redis.HomeTTLSeconds)*time.Second)
	auditPublisher := rabbitmq.NewAuditPublisher(app.MQConn, app.Config.RabbitMQ.AuditQueue)

	userService := appsvc.NewUserService(userRepo, postRepo, homeCache, auditPublisher)
	postService := appsvc.NewPostService(postRepo, userRepo, homeCache, auditPublisher)
	shaper := schema.NewShaper(app.Config.Media.ImageURLPrefix, app.Config.Media.DefaultImage)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Static("/static", app.Config.Media.StaticDir)

	Register(
		router,
		handler.NewUserHandler(userService, shaper),
		handler.NewPostHandler(postService, shaper),
		handler.NewPageHandler(postService, userService, shaper),
	)

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)

	return router
}

// Register wires the API and page routes onto the engine. The error renderer
// is installed here so every registered route shares one translation point.
func Register(router *gin.Engine, userH *handler.UserHandler, postH *handler.PostHandler, pageH *handler.PageHandler) {
	router.SetHTMLTemplate(web.Templates())
	router.Use(middleware.ErrorRenderer())

	api := router.Group("/api")
	users := api.Group("/users")
	users.POST("", userH.Create)
	users.GET("/:id", userH.Get)
	users.PATCH("/:id", userH.Patch)
	users.DELETE("/:id", userH.Delete)
	users.GET("/:id/posts", userH.ListPosts)

	posts := api.Group("/posts")
	posts.GET("", postH.List)
	posts.POST("", postH.Create)
	posts.GET("/:id", postH.Get)
	posts.PUT("/:id", postH.Replace)
	posts.PATCH("/:id", postH.Patch)
	posts.DELETE("/:id", postH.Delete)

	router.GET("/", pageH.Home)
	router.GET("/posts", pageH.Home)
	router.GET("/posts/:id", pageH.PostDetail)
	router.GET("/users/:id/posts", pageH.UserPosts)
	router.POST("/posts/delete/:id", pageH.DeletePost)
}
