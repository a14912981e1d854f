package menu

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

type AdminHandler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func NewAdminHandler(service *Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// --------------------------------------------------
// Restaurant uploads menu
// --------------------------------------------------
func (h *Handler) Upload(c *gin.Context) {
	restaurantID := c.GetString("restaurantID")

	file, header, err := c.Request.FormFile("menu_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu_file is required"})
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")

	uploadID, status, err := h.service.UploadMenu(
		c.Request.Context(),
		restaurantID,
		header.Filename,
		mimeType,
		file,
	)
	if err != nil {
		if errors.Is(err, ErrExcelUpload) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"menu_upload_id": uploadID,
		"status":         status,
		"message":        "Menu uploaded. Extraction will start automatically.",
	})
}

// --------------------------------------------------
// Restaurant polls extraction status
// --------------------------------------------------
func (h *Handler) Status(c *gin.Context) {
	restaurantID := c.GetString("restaurantID")

	status, err := h.service.GetMenuStatus(c.Request.Context(), restaurantID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, status)
}

// --------------------------------------------------
// Restaurant retries a failed extraction
// --------------------------------------------------
func (h *Handler) Retry(c *gin.Context) {
	restaurantID := c.GetString("restaurantID")

	if err := h.service.RetryMenu(c.Request.Context(), restaurantID); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Menu queued for extraction again."})
}

// --------------------------------------------------
// Restaurant views its live menu
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	restaurantID := c.GetString("restaurantID")

	categories, items, err := h.service.ListMenu(c.Request.Context(), restaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"items":      items,
	})
}

// --------------------------------------------------
// Guest views a restaurant's menu (PUBLIC route)
// --------------------------------------------------
func (h *Handler) PublicList(c *gin.Context) {
	restaurantID := c.Param("id")

	categories, items, err := h.service.ListMenu(c.Request.Context(), restaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if categories == nil {
		categories = []Category{}
	}
	if items == nil {
		items = []Item{}
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"items":      items,
	})
}

// --------------------------------------------------
// Admin: view extracted menus pending approval
// --------------------------------------------------
func (h *AdminHandler) PendingMenus(c *gin.Context) {
	pending, err := h.service.PendingMenus(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if pending == nil {
		pending = []MenuUpload{}
	}
	c.JSON(http.StatusOK, gin.H{"pending_menus": pending})
}

// --------------------------------------------------
// Admin: approve menu
// --------------------------------------------------
func (h *AdminHandler) ApproveMenu(c *gin.Context) {
	uploadID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu upload id"})
		return
	}
	adminID := c.GetString("userID")

	if err := h.service.ApproveMenu(c.Request.Context(), uploadID, adminID); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Menu approved",
		"menu_upload_id": uploadID,
	})
}

// --------------------------------------------------
// Admin: reject menu
// --------------------------------------------------
func (h *AdminHandler) RejectMenu(c *gin.Context) {
	uploadID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid menu upload id"})
		return
	}
	adminID := c.GetString("userID")

	var body struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Reason == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reason is required"})
		return
	}

	if err := h.service.RejectMenu(c.Request.Context(), uploadID, adminID, body.Reason); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Menu rejected",
		"menu_upload_id": uploadID,
	})
}
