package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zenvy-storefront/internal/backend"
	"zenvy-storefront/internal/models"
)

func sampleHistory() []*models.Order {
	return []*models.Order{
		{ID: "o1", OrderStatus: models.OrderPlaced},
		{ID: "o2", OrderStatus: models.OrderShipped},
		{ID: "o3", OrderStatus: models.OrderDelivered},
		{ID: "o4", OrderStatus: models.OrderCancelled},
		{ID: "o5", OrderStatus: models.OrderOutForDelivery},
	}
}

func TestFilterHistory(t *testing.T) {
	history := sampleHistory()

	all := FilterHistory(history, HistoryAll)
	assert.Len(t, all, 5)

	active := FilterHistory(history, HistoryActive)
	ids := make([]string, 0, len(active))
	for _, o := range active {
		ids = append(ids, o.ID)
	}
	assert.ElementsMatch(t, []string{"o1", "o2", "o5"}, ids)

	delivered := FilterHistory(history, HistoryDelivered)
	require.Len(t, delivered, 1)
	assert.Equal(t, "o3", delivered[0].ID)

	cancelled := FilterHistory(history, HistoryCancelled)
	require.Len(t, cancelled, 1)
	assert.Equal(t, "o4", cancelled[0].ID)

	// A blank filter means all; an unknown one matches nothing
	assert.Len(t, FilterHistory(history, ""), 5)
	assert.Empty(t, FilterHistory(history, HistoryFilter("bogus")))
}

func TestCancelRejectsShippedOrderWithoutNetwork(t *testing.T) {
	var mu sync.Mutex
	cancelHits := 0

	mux := http.NewServeMux()
	mux.HandleFunc("/orders/active", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"orders": []*models.Order{
				{ID: "o2", OrderStatus: models.OrderShipped, PaymentStatus: models.PaymentSuccess},
			},
		})
	})
	mux.HandleFunc("/orders/o2/cancel", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		cancelHits++
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	tracker := NewTracker(backend.NewClient(server.URL, backend.StaticToken("tok")))
	require.NoError(t, tracker.Refresh(context.Background()))
	require.Len(t, tracker.Active(), 1)

	_, err := tracker.Cancel(context.Background(), "o2")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	mu.Lock()
	assert.Equal(t, 0, cancelHits, "a shipped order must be rejected before the cancel call")
	mu.Unlock()
}

func TestCancelPlacedOrderRefreshesActive(t *testing.T) {
	cancelled := false
	mux := http.NewServeMux()
	mux.HandleFunc("/orders/active", func(w http.ResponseWriter, r *http.Request) {
		active := []*models.Order{
			{ID: "o1", OrderStatus: models.OrderPlaced, PaymentStatus: models.PaymentSuccess},
		}
		if cancelled {
			active = nil
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"orders": active})
	})
	mux.HandleFunc("/orders/o1/cancel", func(w http.ResponseWriter, r *http.Request) {
		cancelled = true
		json.NewEncoder(w).Encode(map[string]interface{}{
			"order": &models.Order{ID: "o1", OrderStatus: models.OrderCancelled},
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	tracker := NewTracker(backend.NewClient(server.URL, backend.StaticToken("tok")))
	require.NoError(t, tracker.Refresh(context.Background()))

	order, err := tracker.Cancel(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, models.OrderCancelled, order.OrderStatus)
	assert.Empty(t, tracker.Active(), "the active list reflects the cancellation")
}
