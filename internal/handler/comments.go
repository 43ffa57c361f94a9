package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/BloggingApp/comment-service/internal/dto"
	"github.com/BloggingApp/comment-service/internal/service"
	"github.com/gin-gonic/gin"
)

func (h *Handler) commentsGetTree(c *gin.Context) {
	postIDString := strings.TrimSpace(c.Param("postID"))
	postID, err := strconv.ParseInt(postIDString, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	tree, err := h.services.Comment.FindPostTree(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
			return
		}

		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, tree)
}
