package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/workplace_services/internal/apperrors"
	"github.com/SscSPs/workplace_services/internal/core/domain"
	portssvc "github.com/SscSPs/workplace_services/internal/core/ports/services"
	"github.com/SscSPs/workplace_services/internal/middleware"
	"github.com/SscSPs/workplace_services/internal/platform/cache"
	"github.com/SscSPs/workplace_services/internal/platform/notify"
)

// BaseService provides common functionality for all services
type BaseService struct {
	notifier portssvc.Notifier
	cache    portssvc.QueryCache
	now      func() time.Time
}

// Option configures the BaseService embedded in every service.
type Option func(*BaseService)

// WithNotifier sets where mutation notifications are published.
func WithNotifier(n portssvc.Notifier) Option {
	return func(s *BaseService) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithCache sets the query cache shared by the services.
func WithCache(c portssvc.QueryCache) Option {
	return func(s *BaseService) {
		if c != nil {
			s.cache = c
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *BaseService) {
		if now != nil {
			s.now = now
		}
	}
}

func newBaseService(opts ...Option) BaseService {
	s := BaseService{
		notifier: notify.Discard{},
		cache:    cache.Nop{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// logFailure logs err at a level matching its kind. Expected outcomes stay at debug.
func (s *BaseService) logFailure(ctx context.Context, err error, msg string, keyvals ...any) {
	if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrValidation) {
		s.LogDebug(ctx, msg, append(keyvals, slog.String("error", err.Error()))...)
		return
	}
	s.LogError(ctx, err, msg, keyvals...)
}

// completeMutation publishes the outcome of a mutation and, on success, drops
// the cache entries it affects. It returns err unchanged.
func (s *BaseService) completeMutation(ctx context.Context, m mutation, userID string, err error, invalidate []string) error {
	n := domain.Notification{UserID: userID, CreatedAt: s.now()}
	if err != nil {
		s.logFailure(ctx, err, m.failure.title)
		n.Title = m.failure.title
		n.Description = failureDescription(err)
		n.Variant = domain.VariantDestructive
		s.notifier.Publish(n)
		return err
	}

	s.cache.Invalidate(invalidate...)
	n.Title = m.success.title
	n.Description = m.success.description
	n.Variant = domain.VariantDefault
	s.notifier.Publish(n)
	return nil
}

// cached returns the value stored under key or loads and stores it.
func cached[T any](c portssvc.QueryCache, key string, load func() (T, error)) (T, error) {
	if v, ok := c.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}
	v, err := load()
	if err != nil {
		return v, err
	}
	c.Set(key, v)
	return v, nil
}

// today is the current calendar date as stored in date columns.
func today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(field, "must be a date in YYYY-MM-DD format")
	}
	return t, nil
}

func parseOptionalDate(field string, value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := parseDate(field, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// checkDateRange rejects an end before its start. Equal dates are allowed.
func checkDateRange(start, end time.Time, endField string) error {
	if end.Before(start) {
		return apperrors.NewValidationError(endField, "must not be before the start date")
	}
	return nil
}

var errEmptyPatch = apperrors.NewValidationError("body", "at least one field must be provided")
