package api

import (
	"github.com/gin-gonic/gin"

	"zenvy-storefront/internal/orders"
)

// GetActiveOrders returns the buyer's undelivered, uncancelled orders
func GetActiveOrders(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	if err := rt.Orders.Refresh(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"orders": rt.Orders.Active()})
}

// GetOrderHistory returns the buyer's full order history, narrowed by the
// optional filter query (all, active, delivered, cancelled). Filtering is
// applied over a single fetched list.
func GetOrderHistory(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	history, err := rt.Orders.History(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	filter := orders.HistoryFilter(c.DefaultQuery("filter", "all"))
	respondOK(c, gin.H{"orders": orders.FilterHistory(history, filter)})
}

// GetOrder fetches one of the buyer's orders with its cancel eligibility
func GetOrder(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	order, err := rt.Client.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{
		"order":     order,
		"canCancel": orders.CanCancel(order.OrderStatus),
	})
}

// CancelOrder cancels one of the buyer's orders. Orders past PROCESSING
// are rejected before any commerce API call.
func CancelOrder(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	order, err := rt.Orders.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"order": order})
}
