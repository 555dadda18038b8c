// Package notify delivers domain notifications. Delivery is best effort:
// failures are logged and never reach the caller.
package notify

import (
	"context"
	"encoding/json"

	"github.com/gdugdh24/skillswap-backend/internal/domain"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Notifier matches request.Notifier.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

// LogNotifier writes notifications to the log.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(_ context.Context, notification domain.Notification) {
	fields := []zap.Field{
		zap.String("recipient", notification.Recipient),
		zap.String("title", notification.Title),
		zap.String("body", notification.Body),
	}
	switch notification.Severity {
	case domain.SeverityError:
		n.logger.Error("notification", fields...)
	case domain.SeverityWarning:
		n.logger.Warn("notification", fields...)
	default:
		n.logger.Info("notification", fields...)
	}
}

// RedisNotifier publishes notifications as JSON on a pub/sub channel.
type RedisNotifier struct {
	client  redis.UniversalClient
	channel string
	logger  *zap.Logger
}

func NewRedisNotifier(client redis.UniversalClient, channel string, logger *zap.Logger) *RedisNotifier {
	return &RedisNotifier{client: client, channel: channel, logger: logger}
}

func (n *RedisNotifier) Notify(ctx context.Context, notification domain.Notification) {
	payload, err := json.Marshal(notification)
	if err != nil {
		n.logger.Error("encode notification", zap.Error(err))
		return
	}
	if err := n.client.Publish(ctx, n.channel, payload).Err(); err != nil {
		n.logger.Warn("publish notification",
			zap.String("channel", n.channel),
			zap.String("recipient", notification.Recipient),
			zap.Error(err),
		)
	}
}

// Multi fans a notification out to every notifier in order.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, notification domain.Notification) {
	for _, n := range m {
		n.Notify(ctx, notification)
	}
}
