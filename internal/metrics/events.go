package metrics

import (
	"context"

	"github.com/osse101/TaskQuest_Go/internal/event"
	"github.com/osse101/TaskQuest_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all progress events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.TaskCompleted,
		event.ProgressUpdated,
		event.LevelUp,
		event.AchievementUnlocked,
		event.StreakFreezeConsumed,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.ProgressUpdated:
		p, err := event.DecodePayload[event.ProgressUpdatedPayloadV1](evt.Payload)
		if err != nil {
			return e.unexpected(ctx, evt, err)
		}
		XPAwarded.Add(float64(p.XPGained))

	case event.LevelUp:
		LevelUps.Inc()

	case event.AchievementUnlocked:
		p, err := event.DecodePayload[event.AchievementUnlockedPayloadV1](evt.Payload)
		if err != nil {
			return e.unexpected(ctx, evt, err)
		}
		AchievementsUnlocked.WithLabelValues(p.AchievementID).Inc()

	case event.StreakFreezeConsumed:
		StreakFreezesUsed.Inc()

	case event.TaskCompleted:
		p, err := event.DecodePayload[event.TaskCompletedPayloadV1](evt.Payload)
		if err != nil {
			return e.unexpected(ctx, evt, err)
		}
		TasksCompleted.WithLabelValues(string(p.Priority)).Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func (e *EventMetricsCollector) unexpected(ctx context.Context, evt event.Event, err error) error {
	EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
	logger.FromContext(ctx).Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
	return nil
}
