package sse

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/TaskQuest_Go/internal/logger"
)

// Handler streams a user's progress events as text/event-stream.
//
// @Summary Stream progress events
// @Description Server-sent events for one user: progress.updated, progress.level_up, progress.achievement_unlocked, progress.streak_frozen and task.completed. Optional comma separated types filter.
// @Tags progress
// @Produce text/event-stream
// @Param user_id query string true "User ID"
// @Param types query string false "Comma separated event types"
// @Success 200 {string} string "event stream"
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Security ApiKeyAuth
// @Router /api/v1/progress/stream [get]
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID := strings.TrimSpace(r.URL.Query().Get(ParamUserID))
		if userID == "" {
			writeJSONError(w, http.StatusBadRequest, ErrMsgMissingUserID)
			return
		}

		var eventTypes []string
		if filterParam := r.URL.Query().Get(ParamTypes); filterParam != "" {
			for _, t := range strings.Split(filterParam, ",") {
				if t = strings.TrimSpace(t); t != "" {
					eventTypes = append(eventTypes, t)
				}
			}
		}

		rc := http.NewResponseController(w)

		client, err := hub.Register(userID, eventTypes)
		if err != nil {
			writeJSONError(w, http.StatusServiceUnavailable, ErrMsgHubClosed)
			return
		}
		log.Info(LogMsgClientConnected, "client_id", client.ID, "user_id", userID, "filters", eventTypes)

		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID, "user_id", userID)
		}()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")
		w.WriteHeader(http.StatusOK)

		send := func(event Event) bool {
			msg, err := FormatSSEMessage(event)
			if err != nil {
				log.Error(LogMsgWriteError, "error", err)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				log.Warn(LogMsgWriteError, "error", err)
				return false
			}
			if err := rc.Flush(); err != nil {
				if errors.Is(err, http.ErrNotSupported) {
					slog.Error(ErrMsgStreamUnsupported)
				}
				return false
			}
			return true
		}

		connected := Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			UserID:    userID,
			Timestamp: time.Now().Unix(),
			Payload: map[string]interface{}{
				"client_id": client.ID,
				"filters":   eventTypes,
			},
		}
		if !send(connected) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-client.EventChannel:
				if !ok {
					// hub shut down
					return
				}
				if !send(event) {
					return
				}

			case <-ticker.C:
				if !send(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
