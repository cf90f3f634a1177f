package event

import (
	"context"
	"sync"

	"github.com/tillerlane/CroftBot_Go/internal/domain"
	"github.com/tillerlane/CroftBot_Go/internal/logger"
)

// Type represents the type of an event
type Type string

// Farm event types
const (
	CropPlanted   Type = domain.EventTypeCropPlanted
	CropHarvested Type = domain.EventTypeCropHarvested
)

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Handler processes a published event
type Handler func(ctx context.Context, e Event)

// Bus is the in-process publish/subscribe boundary. Publishing is
// synchronous: handlers run before Publish returns, and a panicking
// handler never takes the publisher down.
type Bus interface {
	Publish(ctx context.Context, e Event) error
	Subscribe(eventType Type, handler Handler)
}

type memoryBus struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewBus creates an in-process event bus.
func NewBus() Bus {
	return &memoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for an event type.
func (b *memoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish delivers the event to all handlers registered for its type.
func (b *memoryBus) Publish(ctx context.Context, e Event) error {
	b.mu.RLock()
	handlers := b.handlers[e.Type]
	b.mu.RUnlock()

	for _, h := range handlers {
		b.invoke(ctx, h, e)
	}
	return nil
}

func (b *memoryBus) invoke(ctx context.Context, h Handler, e Event) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error("Event handler panicked", "type", e.Type, "panic", r)
		}
	}()
	h(ctx, e)
}
