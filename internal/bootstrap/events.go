package bootstrap

import (
	"log/slog"

	"github.com/tillerlane/CroftBot_Go/internal/event"
	"github.com/tillerlane/CroftBot_Go/internal/metrics"
)

// InitializeEventSystem creates the in-process event bus and registers
// the standing subscribers.
func InitializeEventSystem() event.Bus {
	bus := event.NewBus()

	collector := metrics.NewEventMetricsCollector()
	collector.Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	return bus
}
