package services

import "github.com/SscSPs/workplace_services/internal/core/domain"

// Notifier accepts notifications emitted by the services. Publish must not block.
type Notifier interface {
	Publish(n domain.Notification)
}

// NotificationSubscriber hands out notification streams.
// The returned cancel func unsubscribes and closes the channel.
type NotificationSubscriber interface {
	Subscribe() (<-chan domain.Notification, func())
}
