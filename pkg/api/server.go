package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/LENAX/ppm/internal/storage"
	"github.com/gin-gonic/gin"
)

// ServerConfig API服务器配置
type ServerConfig struct {
	Host         string        // 监听地址
	Port         int           // 监听端口
	ReadTimeout  time.Duration // 读取超时
	WriteTimeout time.Duration // 写入超时
	Env          string        // 运行环境，prod时gin使用ReleaseMode
}

// DefaultServerConfig 默认服务器配置
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Host:         "0.0.0.0",
		Port:         8080,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Env:          "dev",
	}
}

// APIServer HTTP API服务器
type APIServer struct {
	repos      *storage.Repositories
	httpServer *http.Server
	config     ServerConfig
	version    string
}

// NewAPIServer 创建API服务器
func NewAPIServer(repos *storage.Repositories, config ServerConfig, version string) *APIServer {
	return &APIServer{
		repos:   repos,
		config:  config,
		version: version,
	}
}

// Start 启动服务器
func (s *APIServer) Start() error {
	gin.SetMode(ginMode(s.config.Env))
	router := SetupRouter(s.repos, s.version)

	s.httpServer = &http.Server{
		Addr:         s.Addr(),
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	log.Printf("🚀 PPM API Server starting on %s (env=%s)", s.Addr(), s.config.Env)
	s.logBackends()

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server listen failed: %w", err)
	}

	return nil
}

// Shutdown 优雅关闭服务器
func (s *APIServer) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	log.Println("🛑 Shutting down API Server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("✅ API Server stopped")
	return nil
}

// logBackends 按实体名顺序打印各资源使用的存储
func (s *APIServer) logBackends() {
	if s.repos == nil {
		return
	}
	entities := make([]string, 0, len(s.repos.Backends))
	for entity := range s.repos.Backends {
		entities = append(entities, entity)
	}
	sort.Strings(entities)
	for _, entity := range entities {
		log.Printf("   %-10s -> %s", entity, s.repos.Backends[entity])
	}
}

// ginMode 根据运行环境选择gin模式
func ginMode(env string) string {
	switch env {
	case "prod", "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

// Addr 获取服务器地址
func (s *APIServer) Addr() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}
