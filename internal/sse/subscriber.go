package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/TaskQuest_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers a forwarding handler for every user-facing progress event
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.ProgressUpdated, forward(s.hub, func(p event.ProgressUpdatedPayloadV1) string { return p.UserID }))
	s.bus.Subscribe(event.LevelUp, forward(s.hub, func(p event.LevelUpPayloadV1) string { return p.UserID }))
	s.bus.Subscribe(event.AchievementUnlocked, forward(s.hub, func(p event.AchievementUnlockedPayloadV1) string { return p.UserID }))
	s.bus.Subscribe(event.StreakFreezeConsumed, forward(s.hub, func(p event.StreakFrozenPayloadV1) string { return p.UserID }))
	s.bus.Subscribe(event.TaskCompleted, forward(s.hub, func(p event.TaskCompletedPayloadV1) string { return p.UserID }))

	slog.Info(LogMsgSubscriberReady,
		"types", []event.Type{
			event.ProgressUpdated,
			event.LevelUp,
			event.AchievementUnlocked,
			event.StreakFreezeConsumed,
			event.TaskCompleted,
		})
}

// forward decodes the typed payload and publishes it to the owning user's streams.
// A malformed payload is logged and skipped so it never lands in the retry queue.
func forward[T any](hub *Hub, userID func(T) string) event.Handler {
	return func(_ context.Context, evt event.Event) error {
		payload, err := event.DecodePayload[T](evt.Payload)
		if err != nil {
			slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
			return nil
		}

		id := userID(payload)
		if id == "" {
			slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", "missing user_id")
			return nil
		}

		hub.Publish(id, string(evt.Type), payload)
		slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type, "user_id", id)
		return nil
	}
}
