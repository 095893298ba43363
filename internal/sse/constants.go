package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// KeepaliveInterval is how often to send keepalive pings
const KeepaliveInterval = 30 * time.Second

// Stream-only event types. Progress events keep their bus type name.
const (
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

// Query parameters
const (
	ParamUserID = "user_id"
	ParamTypes  = "types"
)

// Error messages
const (
	ErrMsgMissingUserID     = "Missing user_id query parameter"
	ErrMsgStreamUnsupported = "Streaming not supported"
	ErrMsgHubClosed         = "Event stream is shutting down"
)

// Log messages
const (
	LogMsgClientConnected    = "Progress stream client connected"
	LogMsgClientDisconnected = "Progress stream client disconnected"
	LogMsgEventBroadcast     = "Broadcasting stream event"
	LogMsgEventDropped       = "Stream event dropped, buffer full"
	LogMsgWriteError         = "Failed to write stream event"
	LogMsgSubscriberReady    = "Progress stream subscribed to event types"
	LogMsgInvalidPayload     = "Invalid event payload for stream"
)
