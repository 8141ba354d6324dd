package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zenvy-storefront/internal/backend"
	"zenvy-storefront/internal/models"
)

func TestConversationOpensWithGreeting(t *testing.T) {
	conv := NewConversation(nil)

	history := conv.History()
	require.Len(t, history, 1)
	assert.Equal(t, models.ChatRoleAssistant, history[0].Role)
	assert.Equal(t, "Hello! I'm your AI assistant for Zenvy. How can I help you today?", history[0].Content)
}

func TestSendExcludesGreetingFromHistory(t *testing.T) {
	var payloads []struct {
		Message             string               `json:"message"`
		ConversationHistory []models.ChatMessage `json:"conversationHistory"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p struct {
			Message             string               `json:"message"`
			ConversationHistory []models.ChatMessage `json:"conversationHistory"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		payloads = append(payloads, p)
		json.NewEncoder(w).Encode(map[string]string{"response": "Sure, I can help with that."})
	}))
	defer server.Close()

	conv := NewConversation(backend.NewClient(server.URL, backend.StaticToken("tok")))

	reply, err := conv.Send(context.Background(), "Where is my order?")
	require.NoError(t, err)
	assert.Equal(t, "Sure, I can help with that.", reply)

	// First turn: no prior context at all, greeting excluded
	require.Len(t, payloads, 1)
	assert.Equal(t, "Where is my order?", payloads[0].Message)
	assert.Empty(t, payloads[0].ConversationHistory)

	_, err = conv.Send(context.Background(), "It was placed yesterday")
	require.NoError(t, err)

	// Second turn carries the first exchange, still no greeting
	require.Len(t, payloads, 2)
	history := payloads[1].ConversationHistory
	require.Len(t, history, 2)
	assert.Equal(t, models.ChatRoleUser, history[0].Role)
	assert.Equal(t, "Where is my order?", history[0].Content)
	assert.Equal(t, models.ChatRoleAssistant, history[1].Role)
}

func TestSendFallsBackOnBackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	conv := NewConversation(backend.NewClient(server.URL, backend.StaticToken("tok")))

	reply, err := conv.Send(context.Background(), "Hello?")
	require.Error(t, err)
	assert.Equal(t, "Sorry, I encountered an error. Please try again later.", reply)

	// The fallback lands in the history so the widget shows it
	history := conv.History()
	require.Len(t, history, 3)
	assert.Equal(t, "Sorry, I encountered an error. Please try again later.", history[2].Content)
}

func TestClearResetsToGreeting(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"response": "ok"})
	}))
	defer server.Close()

	conv := NewConversation(backend.NewClient(server.URL, backend.StaticToken("tok")))
	_, err := conv.Send(context.Background(), "hi")
	require.NoError(t, err)
	require.Len(t, conv.History(), 3)

	conv.Clear()
	history := conv.History()
	require.Len(t, history, 1)
	assert.Equal(t, Greeting, history[0].Content)
}
