package session

import "sync"

// InvalidationBus is the single broadcast channel for the credential
// invalidation signal. The transport client publishes into it; the session
// controller binds itself as the sole handler at construction time. A second
// bind attempt is ignored so duplicate handlers cannot accumulate.
type InvalidationBus struct {
	mu      sync.Mutex
	handler func(reason string)
}

func NewInvalidationBus() *InvalidationBus {
	return &InvalidationBus{}
}

func (b *InvalidationBus) Publish(reason string) {
	b.mu.Lock()
	handler := b.handler
	b.mu.Unlock()

	if handler != nil {
		handler(reason)
	}
}

func (b *InvalidationBus) bind(handler func(reason string)) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.handler == nil {
		b.handler = handler
	}
}
