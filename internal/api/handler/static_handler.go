package handler

import (
	"io/fs"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Static serves files from the public tree at the web root and renders the
// 404 page for anything else. Registered as the router's NoRoute handler.
func (h *Handler) Static() gin.HandlerFunc {
	fileServer := http.FileServer(http.FS(h.public))
	cacheControl := "public, max-age=" + strconv.Itoa(h.publicCacheSeconds)

	return func(c *gin.Context) {
		method := c.Request.Method
		if method == http.MethodGet || method == http.MethodHead {
			name := strings.TrimPrefix(path.Clean("/"+c.Request.URL.Path), "/")
			if name != "" {
				if info, err := fs.Stat(h.public, name); err == nil && !info.IsDir() {
					c.Header("Cache-Control", cacheControl)
					fileServer.ServeHTTP(c.Writer, c.Request)
					return
				}
			}
		}
		h.renderError(c, http.StatusNotFound, "Page not found.")
	}
}
