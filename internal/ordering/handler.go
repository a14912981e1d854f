package ordering

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Guest places order (PUBLIC route)
// --------------------------------------------------
func (h *Handler) PlaceOrder(c *gin.Context) {
	restaurantID := c.Param("id")

	var req struct {
		Table         int           `json:"table"`
		CustomerName  string        `json:"customer_name"`
		CustomerPhone string        `json:"customer_phone"`
		Lines         []RequestLine `json:"lines"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	order, waLink, err := h.service.PlaceOrder(
		c.Request.Context(),
		restaurantID,
		req.Table,
		req.CustomerName,
		req.CustomerPhone,
		req.Lines,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"order":        order,
		"whatsapp_url": waLink,
	})
}

// --------------------------------------------------
// Owner views orders
// --------------------------------------------------
func (h *Handler) ListOrders(c *gin.Context) {
	restaurantID := c.Param("id")
	userID := c.GetString("userID")

	orders, err := h.service.ListOrders(c.Request.Context(), restaurantID, userID)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	if orders == nil {
		orders = []Order{}
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
