package billing

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

// GET /billing/plans
func (h *Handler) ListPlans(c *gin.Context) {
	plans, err := h.service.ListPlans(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if plans == nil {
		plans = []Plan{}
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

// POST /restaurants/:id/billing/trial
func (h *Handler) StartTrial(c *gin.Context) {
	restaurantID := c.Param("id")
	userID := c.GetString("userID")

	var req struct {
		PlanID string `json:"plan_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.PlanID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "plan_id is required"})
		return
	}

	sub, err := h.service.StartTrial(c.Request.Context(), restaurantID, userID, req.PlanID)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, sub)
}

// POST /restaurants/:id/billing/checkout
func (h *Handler) StartCardCheckout(c *gin.Context) {
	restaurantID := c.Param("id")
	userID := c.GetString("userID")

	var req struct {
		PlanID string `json:"plan_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.PlanID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "plan_id is required"})
		return
	}

	redirect, err := h.service.StartCardCheckout(c.Request.Context(), restaurantID, userID, req.PlanID)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"checkout_url": redirect})
}

// POST /billing/confirm
// Gateway callback after a hosted checkout settles.
func (h *Handler) ConfirmPayment(c *gin.Context) {
	var req struct {
		RestaurantID string `json:"restaurant_id"`
		PlanID       string `json:"plan_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.RestaurantID == "" || req.PlanID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "restaurant_id and plan_id required"})
		return
	}

	sub, err := h.service.ConfirmCardPayment(c.Request.Context(), req.RestaurantID, req.PlanID)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sub)
}

// GET /restaurants/:id/billing
func (h *Handler) GetSubscription(c *gin.Context) {
	restaurantID := c.Param("id")
	userID := c.GetString("userID")

	sub, err := h.service.GetSubscription(c.Request.Context(), restaurantID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sub)
}

// POST /admin/restaurants/:id/billing/manual-payment
func (h *Handler) RecordManualPayment(c *gin.Context) {
	restaurantID := c.Param("id")
	adminID := c.GetString("userID")

	sub, err := h.service.RecordManualPayment(c.Request.Context(), restaurantID, adminID)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sub)
}
