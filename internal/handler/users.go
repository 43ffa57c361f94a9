package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/BloggingApp/comment-service/internal/dto"
	"github.com/BloggingApp/comment-service/internal/service"
	"github.com/gin-gonic/gin"
)

func (h *Handler) usersGet(c *gin.Context) {
	username := strings.TrimPrefix(strings.TrimSpace(c.Param("username")), "@")
	if username == "" {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidUsername.Error()))
		return
	}

	user, err := h.services.User.FindByUsername(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
			return
		}

		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, user)
}
