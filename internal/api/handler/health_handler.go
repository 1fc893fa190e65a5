package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/postboard/pkg/response"
)

// Health 存活探针，附带当前帖子数量
// GET /healthz
func (h *Handler) Health(c *gin.Context) {
	cnt, err := h.postService.Count(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"status": "ok", "posts": cnt})
}
