package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zenvy-storefront/internal/backend"
	"zenvy-storefront/internal/models"
	"zenvy-storefront/internal/orders"
)

// AdminGetOrders lists all orders. The filter query narrows the list:
// "paid" keeps only successfully paid orders, any fulfillment status
// keeps orders in that state.
func AdminGetOrders(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	query := backend.AdminOrderQuery{}
	switch filter := c.Query("filter"); filter {
	case "", "all":
	case "paid":
		query.PaymentStatus = models.PaymentSuccess
	default:
		query.Status = models.OrderStatus(filter)
	}

	list, err := rt.Workflow.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"orders": list})
}

// AdminGetOrder fetches one order with the transitions the workflow
// currently offers on it. The set is empty unless the payment succeeded.
func AdminGetOrder(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	order, err := rt.Workflow.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{
		"order":                order,
		"availableTransitions": orders.AvailableTransitions(order),
	})
}

// AdminUpdateOrderStatus moves an order through the fulfillment workflow.
// Illegal transitions are rejected before any commerce API call.
func AdminUpdateOrderStatus(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Status is required",
		})
		return
	}

	order, err := rt.Workflow.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	updated, err := rt.Workflow.UpdateStatus(c.Request.Context(), order, models.OrderStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{
		"order":                updated,
		"availableTransitions": orders.AvailableTransitions(updated),
	})
}

// AdminDeleteOrder purges an order record entirely. The confirm query
// parameter stands in for the blocking prompt; without confirm=true
// nothing happens.
func AdminDeleteOrder(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	confirmed := c.Query("confirm") == "true"
	if err := rt.Workflow.HardDelete(c.Request.Context(), c.Param("id"), confirmed); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"message": "Order deleted"})
}
