package events

import (
	"sync"
)

// Kind is the change-kind tag carried by a notification. Events carry no
// payload: they are cache-invalidation signals, observers re-query
// authoritative state.
type Kind string

const (
	BookingsUpdated    Kind = "bookings_updated"
	CourtsUpdated      Kind = "courts_updated"
	AccessoriesUpdated Kind = "accessories_updated"
)

// Event одно уведомление об изменении
type Event struct {
	Kind Kind `json:"message"`
}

// Metrics опциональные счетчики шины
type Metrics interface {
	EventPublished(kind string)
	SubscriberCount(n int)
}

// Bus is an injected in-process broadcast bus. Delivery is best-effort
// and at-most-once per subscriber per event: a subscriber whose buffer is
// full misses the event instead of blocking the publisher. A missed event
// is harmless because observers always re-fetch current persisted state.
type Bus struct {
	mu      sync.RWMutex
	nextID  int64
	subs    map[int64]chan Event
	bufSize int
	metrics Metrics
}

// Option настройка шины
type Option func(*Bus)

// WithBufferSize задает размер буфера подписчика (по умолчанию 16)
func WithBufferSize(n int) Option {
	return func(b *Bus) {
		if n > 0 {
			b.bufSize = n
		}
	}
}

// WithMetrics подключает счетчики публикаций/подписчиков
func WithMetrics(m Metrics) Option {
	return func(b *Bus) {
		b.metrics = m
	}
}

// NewBus создает шину уведомлений
func NewBus(opts ...Option) *Bus {
	b := &Bus{
		subs:    make(map[int64]chan Event),
		bufSize: 16,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers an observer and returns its event channel together
// with an unsubscribe function. Unsubscribing closes the channel and never
// affects delivery to other observers.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	ch := make(chan Event, b.bufSize)
	b.subs[id] = ch
	count := len(b.subs)
	b.mu.Unlock()

	if b.metrics != nil {
		b.metrics.SubscriberCount(count)
	}

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			count := len(b.subs)
			b.mu.Unlock()
			close(ch)
			if b.metrics != nil {
				b.metrics.SubscriberCount(count)
			}
		})
	}

	return ch, unsubscribe
}

// Publish broadcasts the change kind to all current subscribers without
// blocking. Called only after a successful commit.
func (b *Bus) Publish(kind Kind) {
	b.mu.RLock()
	for _, ch := range b.subs {
		select {
		case ch <- Event{Kind: kind}:
		default:
			// Переполненный подписчик пропускает событие
		}
	}
	b.mu.RUnlock()

	if b.metrics != nil {
		b.metrics.EventPublished(string(kind))
	}
}
