package chat

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// RelayMessage is one frame on the chat widget's live connection
type RelayMessage struct {
	Type    string `json:"type"`
	Role    string `json:"role,omitempty"`
	Content string `json:"content,omitempty"`
}

const (
	relayTypeMessage = "message"
	relayTypeClear   = "clear"
	relayTypeError   = "error"
)

// Relay serves the chat widget over a websocket: user frames go through
// the conversation, assistant replies come back on the same connection.
type Relay struct {
	upgrader websocket.Upgrader
}

// NewRelay creates a chat relay
func NewRelay() *Relay {
	return &Relay{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Serve upgrades the request and pumps frames until the peer hangs up.
// One goroutine per connection is enough; turns are strictly sequential.
func (r *Relay) Serve(w http.ResponseWriter, req *http.Request, conv *Conversation) {
	conn, err := r.upgrader.Upgrade(w, req, nil)
	if err != nil {
		log.Printf("Chat relay upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	// Replay existing history so a reopened widget resumes mid-thread.
	for _, msg := range conv.History() {
		frame := RelayMessage{Type: relayTypeMessage, Role: msg.Role, Content: msg.Content}
		if err := conn.WriteJSON(frame); err != nil {
			return
		}
	}

	for {
		var frame RelayMessage
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Chat relay read error: %v", err)
			}
			return
		}

		switch frame.Type {
		case relayTypeClear:
			conv.Clear()
			continue
		case relayTypeMessage:
		default:
			continue
		}
		if frame.Content == "" {
			continue
		}

		ctx, cancel := context.WithTimeout(req.Context(), 60*time.Second)
		reply, sendErr := conv.Send(ctx, frame.Content)
		cancel()

		out := RelayMessage{Type: relayTypeMessage, Role: "assistant", Content: reply}
		if sendErr != nil {
			out.Type = relayTypeError
		}
		if err := conn.WriteJSON(out); err != nil {
			return
		}
	}
}
