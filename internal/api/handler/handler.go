package handler

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/postboard/internal/service"
	"github.com/d60-Lab/postboard/internal/view"
	"github.com/d60-Lab/postboard/pkg/logger"
	"github.com/d60-Lab/postboard/pkg/response"
)

type Handler struct {
	postService        service.PostService
	renderer           view.Renderer
	public             fs.FS
	publicCacheSeconds int
}

func NewHandler(postService service.PostService, renderer view.Renderer, public fs.FS, publicCacheSeconds int) *Handler {
	return &Handler{
		postService:        postService,
		renderer:           renderer,
		public:             public,
		publicCacheSeconds: publicCacheSeconds,
	}
}

func (h *Handler) render(c *gin.Context, status int, page string, data any) {
	body, err := h.renderer.Render(page, data)
	if err != nil {
		logger.Error("render page", zap.String("page", page), zap.Error(err))
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	response.HTML(c, status, body)
}

func (h *Handler) renderError(c *gin.Context, status int, message string) {
	h.render(c, status, view.PageError, gin.H{"status": status, "message": message})
}

// internalError 记录错误并渲染 500 页面
func (h *Handler) internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	logger.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	h.renderError(c, http.StatusInternalServerError, "Something went wrong.")
}
