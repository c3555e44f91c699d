package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// RequestLogger logs every request, tags it with a request id, and recovers
// from panics with the service's catch-all error body.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqID := requestID(c)
		c.Set("request_id", reqID)
		c.Writer.Header().Set("X-Request-ID", reqID)

		defer func() {
			if recovered := recover(); recovered != nil {
				log.Error().
					Str("request_id", reqID).
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Str("panic", fmt.Sprintf("%v", recovered)).
					Bytes("stack", debug.Stack()).
					Msg("request panic")

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Something went wrong!",
				})
				return
			}

			var evt *zerolog.Event
			if c.Writer.Status() >= http.StatusInternalServerError {
				evt = log.Error()
			} else {
				evt = log.Info()
			}
			evt.
				Str("request_id", reqID).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Str("query", c.Request.URL.RawQuery).
				Str("client_ip", c.ClientIP()).
				Int("status", c.Writer.Status()).
				Dur("latency", time.Since(start)).
				Msg("request")
		}()

		c.Next()
	}
}

func requestID(c *gin.Context) string {
	if id := c.GetHeader("X-Request-ID"); id != "" {
		return id
	}
	return uuid.NewString()
}
