// Package notify holds the sinks that display or forward storefront
// notifications.
package notify

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"ShopSphere/internal/collection"
	"ShopSphere/pkg/kit"
)

// Fanout delivers each notification to every sink in order.
type Fanout []collection.Notifier

func (f Fanout) Notify(ctx context.Context, n collection.Notification) {
	for _, s := range f {
		if s != nil {
			s.Notify(ctx, n)
		}
	}
}

type Log struct {
	log *zap.Logger
}

func NewLog(log *zap.Logger) *Log {
	return &Log{log: kit.OrNop(log)}
}

func (l *Log) Notify(_ context.Context, n collection.Notification) {
	l.log.Info("notification",
		zap.String("id", n.ID),
		zap.String("kind", string(n.Kind)),
		zap.String("collection", n.Collection),
		zap.String("product_id", n.ProductID),
		zap.String("message", n.Message),
	)
}

// Writer prints one line per notification, for terminals.
type Writer struct {
	W io.Writer
}

func (w Writer) Notify(_ context.Context, n collection.Notification) {
	mark := "✓"
	if n.Kind == collection.KindInfo {
		mark = "i"
	}
	_, _ = fmt.Fprintf(w.W, "[%s] %s\n", mark, n.Message)
}
