package server

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/mathlab/internal/logger"
)

func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		kv := []interface{}{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
		}
		if len(c.Errors) > 0 {
			kv = append(kv, "errors", c.Errors.String())
		}
		if c.Writer.Status() >= 500 {
			log.Error("request", kv...)
			return
		}
		log.Debug("request", kv...)
	}
}
