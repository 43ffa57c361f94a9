package handler

import (
	"github.com/BloggingApp/comment-service/internal/repository"
	"github.com/BloggingApp/comment-service/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

type Handler struct {
	services *service.Service
	store    repository.Store
}

func New(services *service.Service, store repository.Store) *Handler {
	return &Handler{
		services: services,
		store:    store,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{viper.GetString("client.origin")},
		AllowMethods: []string{"GET"},
	}))

	r.GET("/health", h.health)

	v1 := r.Group("/api/v1")
	{
		posts := v1.Group("/posts")
		{
			posts.GET("/:postID/comments", h.commentsGetTree)
		}

		users := v1.Group("/users")
		{
			users.GET("/:username", h.usersGet)
		}
	}

	return r
}
