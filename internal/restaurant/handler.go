package restaurant

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Create restaurant
// --------------------------------------------------
func (h *Handler) CreateRestaurant(c *gin.Context) {
	var req struct {
		Name           string `json:"name"`
		City           string `json:"city"`
		CuisineType    string `json:"cuisine_type"`
		WhatsAppNumber string `json:"whatsapp_number"`
		Currency       string `json:"currency"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	r, err := h.service.CreateRestaurant(
		c.Request.Context(),
		userID,
		req.Name,
		req.City,
		req.CuisineType,
		req.WhatsAppNumber,
		req.Currency,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, r)
}

// --------------------------------------------------
// List restaurants owned by user
// --------------------------------------------------
func (h *Handler) ListMyRestaurants(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	restaurants, err := h.service.ListMyRestaurants(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch restaurants"})
		return
	}
	if restaurants == nil {
		restaurants = []*Restaurant{}
	}

	c.JSON(http.StatusOK, restaurants)
}

// --------------------------------------------------
// GET /restaurants/:id/qr-codes?tables=N
// --------------------------------------------------
func (h *Handler) TableQRCodes(c *gin.Context) {
	restaurantID := c.Param("id")

	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	count, err := strconv.Atoi(c.DefaultQuery("tables", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tables parameter"})
		return
	}

	codes, err := h.service.TableQRCodes(c.Request.Context(), restaurantID, userID, count)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"qr_codes": codes})
}
