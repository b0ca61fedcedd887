package notify

import (
	"context"
	"sync"

	"ShopSphere/internal/collection"
)

const DefaultFeedSize = 50

// Feed keeps the most recent notifications for clients that poll.
type Feed struct {
	mu   sync.Mutex
	buf  []collection.Notification
	next int
	full bool
}

func NewFeed(size int) *Feed {
	if size <= 0 {
		size = DefaultFeedSize
	}
	return &Feed{buf: make([]collection.Notification, size)}
}

func (f *Feed) Notify(_ context.Context, n collection.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.buf[f.next] = n
	f.next = (f.next + 1) % len(f.buf)
	if f.next == 0 {
		f.full = true
	}
}

// Recent returns up to limit notifications, newest first. A non-positive
// limit returns everything held.
func (f *Feed) Recent(limit int) []collection.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := f.next
	if f.full {
		n = len(f.buf)
	}
	if limit <= 0 || limit > n {
		limit = n
	}

	out := make([]collection.Notification, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (f.next - i + len(f.buf)) % len(f.buf)
		out = append(out, f.buf[idx])
	}
	return out
}
