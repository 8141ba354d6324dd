package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"zenvy-storefront/internal/backend"
	"zenvy-storefront/internal/inventory"
	"zenvy-storefront/internal/middleware"
	"zenvy-storefront/internal/orders"
	"zenvy-storefront/internal/store"
)

// runtime pulls the session runtime attached by the session middleware.
// A nil return has already been answered with an error.
func runtime(c *gin.Context) *store.Runtime {
	rt := middleware.GetRuntime(c)
	if rt == nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Session not available",
		})
	}
	return rt
}

// respondError maps an error to the right status code and the standard
// envelope. Login-gated actions answer 401, local validation 400,
// commerce API failures pass their status through, anything else is a
// gateway fault.
func respondError(c *gin.Context, err error) {
	status := http.StatusBadGateway

	var validationErr *store.ValidationError
	var inputErr *inventory.ValidationError
	var orderErr *orders.ValidationError
	var apiErr *backend.APIError

	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
		if strings.HasPrefix(validationErr.Message, "Please login") {
			status = http.StatusUnauthorized
		}
	case errors.As(err, &inputErr), errors.As(err, &orderErr):
		status = http.StatusBadRequest
	case errors.As(err, &apiErr):
		status = apiErr.StatusCode
	}

	c.JSON(status, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}

func respondOK(c *gin.Context, data gin.H) {
	payload := gin.H{"success": true}
	for k, v := range data {
		payload[k] = v
	}
	c.JSON(http.StatusOK, payload)
}
