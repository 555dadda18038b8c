package notify

import (
	"context"
	"testing"

	"github.com/gdugdh24/skillswap-backend/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogNotifierLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	n := NewLogNotifier(zap.New(core))
	ctx := context.Background()

	n.Notify(ctx, domain.Notification{Recipient: "1", Title: "Request accepted", Severity: domain.SeverityInfo})
	n.Notify(ctx, domain.Notification{Recipient: "1", Title: "Could not accept", Severity: domain.SeverityWarning})
	n.Notify(ctx, domain.Notification{Recipient: "1", Title: "Could not accept", Severity: domain.SeverityError})

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "Request accepted", entries[0].ContextMap()["title"])
}

func TestRedisNotifierSwallowsErrors(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	// Nothing listens on this port.
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer client.Close()

	n := NewRedisNotifier(client, "skillswap:test", zap.New(core))
	n.Notify(context.Background(), domain.Notification{Recipient: "4", Title: "hi"})

	require.Equal(t, 1, logs.FilterMessage("publish notification").Len())
}

type countingNotifier struct{ n int }

func (c *countingNotifier) Notify(context.Context, domain.Notification) { c.n++ }

func TestMultiFansOut(t *testing.T) {
	a, b := &countingNotifier{}, &countingNotifier{}
	Multi{a, b}.Notify(context.Background(), domain.Notification{})
	assert.Equal(t, 1, a.n)
	assert.Equal(t, 1, b.n)
}
