package main

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"book-nook/pkg/common/config"
	"book-nook/pkg/core/auth"
	catalogmodel "book-nook/pkg/core/catalog/model"
	catalogdao "book-nook/pkg/core/catalog/repository/dao/impl"
	usermodel "book-nook/pkg/core/user/model"
	userdao "book-nook/pkg/core/user/repository/dao/impl"
	"book-nook/pkg/web/handler"
	"book-nook/pkg/web/router"
)

func main() {
	// 初始化配置
	cfg := config.Load()

	// 初始化数据库连接
	db, err := cfg.InitDB()
	if err != nil {
		panic("Failed to initialize database: " + err.Error())
	}

	// 迁移表结构
	if err := catalogmodel.AutoMigrate(db); err != nil {
		panic("Failed to migrate catalog tables: " + err.Error())
	}
	if err := usermodel.AutoMigrate(db); err != nil {
		panic("Failed to migrate user table: " + err.Error())
	}

	// 组装依赖
	catalogRepo := catalogdao.NewCatalogRepository(db)
	userRepo := userdao.NewUserRepository(db)
	sessions := auth.NewMemorySessionStore()

	api := &router.API{
		Authors: handler.NewAuthorHandler(catalogRepo),
		Books:   handler.NewBookHandler(catalogRepo),
		Users:   handler.NewUserHandler(userRepo, sessions),
		Health:  handler.NewHealthCheckHandler(db),
	}

	// 创建Hertz实例
	h := server.Default(
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
	)

	// 注册路由
	router.RegisterAPIs(h, cfg, api)

	// 启动服务
	h.Spin()
}
