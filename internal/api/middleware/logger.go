package middleware

import (
	"net/http"
	"time"

	"soup-catalog/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logger 存取日誌中間件，依狀態碼決定日誌級別
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		target := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			target += "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", target),
			zap.String("ip", c.ClientIP()),
			zap.String("user-agent", c.Request.UserAgent()),
			zap.Duration("latency", time.Since(start)),
			zap.Int("bytes", c.Writer.Size()),
			zap.String("request_id", requestid.Get(c)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.Strings("errors", c.Errors.Errors()))
		}

		logAccess(status, fields)
	}
}

func logAccess(status int, fields []zap.Field) {
	switch {
	case status >= http.StatusInternalServerError:
		common.LogError("伺服器錯誤", append(fields, zap.String("error_type", "server_error"))...)
	case status >= http.StatusBadRequest:
		common.LogWarn("用戶端錯誤", append(fields, zap.String("error_type", "client_error"))...)
	case status >= http.StatusMultipleChoices:
		common.LogInfo("重新導向", fields...)
	default:
		common.LogInfo("請求完成", fields...)
	}
}

// Recovery 攔截 panic 並回傳 INTERNAL_ERROR
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			common.LogError("Panic recovered",
				zap.Any("error", rec),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", requestid.Get(c)),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, common.ErrInternalError.ToResponse(false))
		}()

		c.Next()
	}
}
