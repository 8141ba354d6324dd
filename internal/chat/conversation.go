package chat

import (
	"context"
	"log"
	"sync"

	"zenvy-storefront/internal/backend"
	"zenvy-storefront/internal/models"
)

// Greeting opens every conversation and is never sent to the backend as
// history.
const Greeting = "Hello! I'm your AI assistant for Zenvy. How can I help you today?"

// fallbackReply is appended when the backend call fails, so the widget
// never dead-ends.
const fallbackReply = "Sorry, I encountered an error. Please try again later."

// Conversation holds one session's support-chat history and relays turns
// through the commerce API.
type Conversation struct {
	client *backend.Client

	mu      sync.Mutex
	history []models.ChatMessage
}

// NewConversation starts a conversation with the assistant greeting
func NewConversation(client *backend.Client) *Conversation {
	return &Conversation{
		client:  client,
		history: []models.ChatMessage{{Role: models.ChatRoleAssistant, Content: Greeting}},
	}
}

// History returns a snapshot of the conversation
func (c *Conversation) History() []models.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.ChatMessage, len(c.history))
	copy(out, c.history)
	return out
}

// Send appends the user's message, posts it with the prior turns
// (greeting excluded), and appends the assistant's reply. A backend
// failure appends the canned apology instead and reports the error.
func (c *Conversation) Send(ctx context.Context, message string) (string, error) {
	c.mu.Lock()
	prior := make([]models.ChatMessage, len(c.history)-1)
	copy(prior, c.history[1:])
	c.history = append(c.history, models.ChatMessage{Role: models.ChatRoleUser, Content: message})
	c.mu.Unlock()

	reply, err := c.client.SendChatMessage(ctx, message, prior)
	if err != nil {
		log.Printf("Chat error: %v", err)
		reply = fallbackReply
	}

	c.mu.Lock()
	c.history = append(c.history, models.ChatMessage{Role: models.ChatRoleAssistant, Content: reply})
	c.mu.Unlock()

	if err != nil {
		return reply, err
	}
	return reply, nil
}

// Clear resets the conversation back to the greeting
func (c *Conversation) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = []models.ChatMessage{{Role: models.ChatRoleAssistant, Content: Greeting}}
}
