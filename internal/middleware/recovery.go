package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RecoveryResponse is the body returned when a handler panics.
type RecoveryResponse struct {
	Error   string   `json:"error"`
	Actions []string `json:"actions"`
}

// Recovery turns a panic in any later handler into a generic 500 offering
// the client a reload or a way back to the dashboard.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		GetLoggerFromCtx(c.Request.Context()).Error("Recovered from panic",
			slog.Any("panic", recovered),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, RecoveryResponse{
			Error:   "Something went wrong",
			Actions: []string{"reload", "dashboard"},
		})
	})
}
