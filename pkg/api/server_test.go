package api

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGinMode(t *testing.T) {
	assert.Equal(t, gin.ReleaseMode, ginMode("prod"))
	assert.Equal(t, gin.ReleaseMode, ginMode("production"))
	assert.Equal(t, gin.TestMode, ginMode("test"))
	assert.Equal(t, gin.DebugMode, ginMode("dev"))
	assert.Equal(t, gin.DebugMode, ginMode(""))
}

func TestAPIServer_Addr(t *testing.T) {
	cfg := DefaultServerConfig()
	cfg.Port = 9090
	s := NewAPIServer(nil, cfg, "test")
	assert.Equal(t, "0.0.0.0:9090", s.Addr())
	assert.Equal(t, "dev", cfg.Env)
}
