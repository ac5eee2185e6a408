package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger 请求日志中间件
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}

		c.Next()

		log.Printf("[API] %s %s %d %v request_id=%s client=%s",
			c.Request.Method, path, c.Writer.Status(), time.Since(start), GetRequestID(c), c.ClientIP())
		if len(c.Errors) > 0 {
			log.Printf("[API] errors: %s", c.Errors.String())
		}
	}
}
