package router

import (
	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/d60-Lab/postboard/config"
	"github.com/d60-Lab/postboard/internal/api/handler"
	"github.com/d60-Lab/postboard/internal/api/middleware"
	"github.com/d60-Lab/postboard/internal/view"
)

// Setup 构建 gin 引擎：中间件链 + 路由
func Setup(cfg *config.Config, h *handler.Handler, renderer view.Renderer) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	r := gin.New()
	_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery(renderer))
	if sentry.CurrentHub().Client() != nil {
		// repanic 交给 Recovery 渲染错误页
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	if cfg.Tracing.Enabled {
		r.Use(otelgin.Middleware(cfg.Tracing.ServiceName))
	}

	secureConfig := secure.Config{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'",
	}
	if cfg.Security.SSL {
		secureConfig.SSLRedirect = true
		secureConfig.STSSeconds = 31536000
		secureConfig.STSIncludeSubdomains = true
	}
	r.Use(secure.New(secureConfig))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.GET("/healthz", h.Health)

	posts := r.Group("/posts")
	if cfg.RateLimit.Enabled {
		posts.Use(middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst).Middleware())
	}
	{
		posts.GET("", h.ListPosts)
		posts.GET("/new", h.NewPostForm)
		posts.POST("", h.CreatePost)
		posts.GET("/:id", h.ShowPost)
		posts.GET("/:id/edit", h.EditPostForm)
		posts.POST("/:id/edit", h.UpdatePost)
		posts.POST("/:id/delete", h.DeletePost)
	}

	r.NoRoute(h.Static())
	return r
}
