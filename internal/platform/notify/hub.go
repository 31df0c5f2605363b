// Package notify carries service notifications to their subscribers.
package notify

import (
	"context"
	"log/slog"
	"sync"

	"github.com/SscSPs/workplace_services/internal/core/domain"
	portssvc "github.com/SscSPs/workplace_services/internal/core/ports/services"
)

// DefaultBuffer is the per-subscriber channel capacity.
const DefaultBuffer = 16

// Hub fans every published notification out to all current subscribers.
// A subscriber whose buffer is full misses the notification.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan domain.Notification]struct{}
	buffer      int
}

var (
	_ portssvc.Notifier               = (*Hub)(nil)
	_ portssvc.NotificationSubscriber = (*Hub)(nil)
)

// NewHub creates a hub whose subscribers buffer up to buffer notifications.
func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Hub{
		subscribers: make(map[chan domain.Notification]struct{}),
		buffer:      buffer,
	}
}

// Subscribe registers a new subscriber and returns its channel and cleanup function.
func (h *Hub) Subscribe() (<-chan domain.Notification, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan domain.Notification, h.buffer)
	h.subscribers[ch] = struct{}{}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subscribers, ch)
			close(ch)
		})
	}
	return ch, cancel
}

// Publish delivers n to every subscriber without blocking.
func (h *Hub) Publish(n domain.Notification) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subscribers {
		select {
		case ch <- n:
		default:
		}
	}
}

// SubscriberCount returns the number of active subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// LogNotifications writes every notification published on sub to logger until ctx is done.
func LogNotifications(ctx context.Context, sub portssvc.NotificationSubscriber, logger *slog.Logger) {
	ch, cancel := sub.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			level := slog.LevelInfo
			if n.Variant == domain.VariantDestructive {
				level = slog.LevelWarn
			}
			logger.Log(ctx, level, "Notification",
				slog.String("title", n.Title),
				slog.String("description", n.Description),
				slog.String("variant", string(n.Variant)),
				slog.String("user_id", n.UserID),
			)
		}
	}
}

// Discard is a Notifier that drops everything.
type Discard struct{}

func (Discard) Publish(domain.Notification) {}
