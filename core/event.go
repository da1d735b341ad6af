package core

// BroadcastChannel is the redis pub/sub channel carrying room events
const BroadcastChannel = "chat"

// Event types carried over the realtime channel
const (
	EventTypeMessage        = "message"
	EventTypeHistoryCleared = "history_cleared"
)

// ChatEvent is the payload of a message event
type ChatEvent struct {
	User string `json:"user"`
	Text string `json:"text"`
}

// Event is the websocket root packet model. Inbound message events are
// re-broadcast verbatim to every connected client, sender included.
type Event struct {
	Type string     `json:"type"`
	Body *ChatEvent `json:"body,omitempty"`
}
