package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/workplace_services/internal/core/ports/services"
	"github.com/SscSPs/workplace_services/internal/dto"
	"github.com/SscSPs/workplace_services/internal/middleware"
	"github.com/SscSPs/workplace_services/internal/utils"
	"github.com/gin-gonic/gin"
)

const defaultKeepalive = 30 * time.Second

type notificationHandler struct {
	subscriber portssvc.NotificationSubscriber
	jwtSecret  string
	keepalive  time.Duration
}

func registerNotificationRoutes(rg *gin.RouterGroup, sub portssvc.NotificationSubscriber, jwtSecret string) {
	h := &notificationHandler{subscriber: sub, jwtSecret: jwtSecret, keepalive: defaultKeepalive}
	rg.GET("/notifications/stream", h.stream)
}

// stream godoc
// @Summary Notification stream
// @Description Server-Sent Events carrying the outcome of every create, update and delete.
// @Description EventSource cannot set headers, so a bearer token may be passed as ?token=.
// @Description Callers receive their own notifications; anonymous callers receive anonymous ones.
// @Tags notifications
// @Produce text/event-stream
// @Param token query string false "JWT when the Authorization header cannot be set"
// @Success 200 {object} domain.Notification "event: notification"
// @Failure 401 {object} dto.ErrorResponse "Invalid token"
// @Router /notifications/stream [get]
func (h *notificationHandler) stream(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := h.streamUser(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	events, cancel := h.subscriber.Subscribe()
	defer cancel()

	logger.Info("Notification stream opened", slog.Bool("anonymous", userID == ""))

	c.SSEvent("connected", gin.H{"status": "connected"})
	c.Writer.Flush()

	keepalive := time.NewTicker(h.keepalive)
	defer keepalive.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case n, open := <-events:
			if !open {
				return
			}
			if n.UserID != userID {
				continue
			}
			c.SSEvent("notification", n)
			c.Writer.Flush()
		case t := <-keepalive.C:
			c.SSEvent("ping", gin.H{"timestamp": t.Unix()})
			c.Writer.Flush()
		case <-ctx.Done():
			logger.Debug("Notification stream closed")
			return
		}
	}
}

// streamUser resolves the subscriber identity from the auth middleware or
// the token query parameter.
func (h *notificationHandler) streamUser(c *gin.Context) (string, bool) {
	if userID, ok := middleware.GetUserIDFromContext(c); ok {
		return userID, true
	}

	token := c.Query("token")
	if token == "" || h.jwtSecret == "" {
		return "", true
	}

	claims, err := utils.ParseAndValidateJWT(token, h.jwtSecret)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Rejected stream token", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid token"})
		return "", false
	}
	return claims.Subject, true
}

