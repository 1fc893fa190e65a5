package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/postboard/internal/view"
	"github.com/d60-Lab/postboard/pkg/logger"
	"github.com/d60-Lab/postboard/pkg/response"
)

// Recovery 捕获 panic，记录日志并渲染 500 页面
func Recovery(renderer view.Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			logger.Error("panic recovered",
				zap.Any("panic", rec),
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", GetRequestID(c)),
				zap.Stack("stack"),
			)
			_ = c.Error(fmt.Errorf("panic: %v", rec))
			if c.Writer.Written() {
				c.Abort()
				return
			}
			body, err := renderer.Render(view.PageError, gin.H{
				"status":  http.StatusInternalServerError,
				"message": "Something went wrong.",
			})
			if err != nil {
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			response.HTML(c, http.StatusInternalServerError, body)
			c.Abort()
		}()
		c.Next()
	}
}
