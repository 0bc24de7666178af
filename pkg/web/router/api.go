package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"book-nook/pkg/common/config"
	"book-nook/pkg/web/handler"
	"book-nook/pkg/web/middleware"
)

// API 汇总各业务Handler，由入口统一注入依赖
type API struct {
	Authors *handler.AuthorHandler
	Books   *handler.BookHandler
	Users   *handler.UserHandler
	Health  *handler.HealthCheckHandler
}

// RegisterAPIs 注册所有API路由
func RegisterAPIs(h *server.Hertz, cfg *config.Config, api *API) {
	// 注册全局中间件（按执行顺序）
	h.Use(
		middleware.RecoveryMiddleware(cfg),
		middleware.LoggerMiddleware(),
		middleware.CORSMiddleware(cfg.Middleware.CORS),
	)

	// 基础接口组
	h.GET("/health", api.Health.AdvancedHealthCheck)

	// 业务接口组
	apiGroup := h.Group("/api")
	{
		apiGroup.POST("/authors", api.Authors.Create)
		apiGroup.GET("/authors", api.Authors.List)
		apiGroup.GET("/authors/:id", api.Authors.Get)
		apiGroup.DELETE("/authors/:id", api.Authors.Delete)

		apiGroup.POST("/books", api.Books.Create)
		apiGroup.GET("/books", api.Books.List)
		// 同一路径同时承载按ID查询与按年份过滤，Handler 内部分派
		apiGroup.GET("/books/:id", api.Books.Get)
		apiGroup.PUT("/books/:id", api.Books.Update)
		apiGroup.DELETE("/books/:id", api.Books.Delete)

		apiGroup.POST("/register", api.Users.Register)
		apiGroup.POST("/login", api.Users.Login)
		apiGroup.POST("/logout", api.Users.Logout)
	}
}
