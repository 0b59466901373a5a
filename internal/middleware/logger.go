package middleware

import (
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// RequestLogger logs one line per request. Handlers put the underlying
// failure under the "error" key, since every response is sent with 200.
func RequestLogger(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		errMsg := c.GetString("error")

		level := logger.InfoLevel
		switch {
		case status >= 500:
			level = logger.ErrorLevel
		case errMsg != "":
			level = logger.WarnLevel
		}

		log.LogAttrs(c.Request.Context(), level, "http request",
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", status),
			logger.Duration("latency", time.Since(start)),
			logger.String("request_id", c.GetString(requestIDKey)),
			logger.String("client_ip", c.ClientIP()),
			logger.String("error", errMsg),
		)
	}
}
