package metrics

import (
	"context"

	"github.com/tillerlane/CroftBot_Go/internal/domain"
	"github.com/tillerlane/CroftBot_Go/internal/event"
	"github.com/tillerlane/CroftBot_Go/internal/logger"
)

// EventMetricsCollector subscribes to farm events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all farm event types
func (e *EventMetricsCollector) Register(bus event.Bus) {
	bus.Subscribe(event.CropPlanted, e.HandleEvent)
	bus.Subscribe(event.CropHarvested, e.HandleEvent)
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch payload := evt.Payload.(type) {
	case domain.CropPlantedPayloadV1:
		CropsPlanted.WithLabelValues(payload.CropType).Inc()
		MoneySpent.Add(float64(payload.Cost))

	case domain.CropHarvestedPayloadV1:
		CropsHarvested.WithLabelValues(payload.CropType).Inc()
		if payload.Resource == domain.ResourceMoney {
			MoneyEarned.Add(float64(payload.Yield))
		}

	default:
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
		return
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
}
