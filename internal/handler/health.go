package handler

import (
	"net/http"

	"github.com/BloggingApp/comment-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) health(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, dto.NewBasicResponse(false, errStoreUnavailable.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}
