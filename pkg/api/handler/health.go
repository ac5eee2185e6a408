package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/LENAX/ppm/pkg/api/dto"
	"github.com/gin-gonic/gin"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	version   string
	startTime time.Time
	ready     func() error
}

// NewHealthHandler 创建HealthHandler
// ready为nil时就绪检查总是成功
func NewHealthHandler(version string, ready func() error) *HealthHandler {
	return &HealthHandler{
		version:   version,
		startTime: time.Now(),
		ready:     ready,
	}
}

// Health 健康检查
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	uptime := time.Since(h.startTime)

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.HealthResponse{
		Status:    "healthy",
		Version:   h.version,
		Uptime:    formatDuration(uptime),
		Timestamp: time.Now().Format(time.RFC3339),
	}))
}

// Ready 就绪检查
// GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.ready != nil {
		if err := h.ready(); err != nil {
			c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(503, fmt.Sprintf("存储未就绪: %v", err)))
			return
		}
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(map[string]string{
		"status": "ready",
	}))
}

// Intro 项目介绍
// GET /
func (h *HealthHandler) Intro(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.IntroResponse{
		Name:    "ppm",
		Version: h.version,
		Resources: map[string]string{
			"applicants": "/api/v1/applicants",
			"addresses":  "/api/v1/addresses",
			"contacts":   "/api/v1/contacts",
		},
	}))
}

// formatDuration 格式化时长
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
}
