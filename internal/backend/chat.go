package backend

import (
	"context"
	"net/http"

	"zenvy-storefront/internal/models"
)

// SendChatMessage posts a support-chat message with the prior conversation
// turns and returns the assistant's reply.
func (c *Client) SendChatMessage(ctx context.Context, message string, history []models.ChatMessage) (string, error) {
	payload := struct {
		Message             string               `json:"message"`
		ConversationHistory []models.ChatMessage `json:"conversationHistory"`
	}{message, history}

	var resp struct {
		Response string `json:"response"`
	}
	if err := c.request(ctx, http.MethodPost, "/chat", payload, &resp); err != nil {
		return "", err
	}
	return resp.Response, nil
}
