package api

import (
	"github.com/LENAX/ppm/internal/storage"
	"github.com/LENAX/ppm/pkg/api/handler"
	"github.com/LENAX/ppm/pkg/api/middleware"
	"github.com/gin-gonic/gin"
)

// recordRoutes 单个实体的路由集合
type recordRoutes interface {
	List(*gin.Context)
	Create(*gin.Context)
	Insert(*gin.Context)
	Get(*gin.Context)
	Update(*gin.Context)
	Delete(*gin.Context)
}

// SetupRouter 设置路由
func SetupRouter(repos *storage.Repositories, version string) *gin.Engine {
	router := gin.New()

	// 全局中间件
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())

	healthHandler := handler.NewHealthHandler(version, repos.Ping)

	// 健康检查路由（不带前缀）
	router.GET("/", healthHandler.Intro)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// API v1 路由组
	v1 := router.Group("/api/v1")
	{
		registerRecordRoutes(v1.Group("/applicants"), handler.NewApplicantHandler(repos.Applicants))
		registerRecordRoutes(v1.Group("/addresses"), handler.NewAddressHandler(repos.Addresses))
		registerRecordRoutes(v1.Group("/contacts"), handler.NewContactHandler(repos.Contacts))
	}

	return router
}

func registerRecordRoutes(g *gin.RouterGroup, h recordRoutes) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.POST("/:id", h.Insert)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}
