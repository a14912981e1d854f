package menu

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	// Stand-in for the auth middleware.
	r.Use(func(c *gin.Context) {
		c.Set("restaurantID", "rest-1")
		c.Set("userID", "admin-1")
	})

	h := NewHandler(svc)
	r.POST("/menu/upload", h.Upload)
	r.GET("/menu/status", h.Status)
	r.POST("/menu/retry", h.Retry)
	r.GET("/menu", h.List)
	return r
}

func multipartUpload(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	fw.Write([]byte(content))
	w.Close()
	return body, w.FormDataContentType()
}

func TestUploadHandler_Created(t *testing.T) {
	router := newTestRouter(NewService(NewMemoryRepository(), &fakeUploader{}))

	body, contentType := multipartUpload(t, "menu_file", "menu.png", "binary")
	req := httptest.NewRequest("POST", "/menu/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["status"] != "MENU_UPLOADED" {
		t.Errorf("response status = %v", resp["status"])
	}
}

func TestUploadHandler_MissingFile(t *testing.T) {
	router := newTestRouter(NewService(NewMemoryRepository(), &fakeUploader{}))

	req := httptest.NewRequest("POST", "/menu/upload", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestUploadHandler_ExcelGuidance(t *testing.T) {
	router := newTestRouter(NewService(NewMemoryRepository(), &fakeUploader{}))

	body, contentType := multipartUpload(t, "menu_file", "menu.xlsx", "binary")
	req := httptest.NewRequest("POST", "/menu/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status %d, got %d", http.StatusUnprocessableEntity, w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("CSV")) {
		t.Errorf("excel rejection should point the tenant at CSV: %s", w.Body.String())
	}
}

func TestStatusHandler_NotFound(t *testing.T) {
	router := newTestRouter(NewService(NewMemoryRepository(), &fakeUploader{}))

	req := httptest.NewRequest("GET", "/menu/status", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestAdminHandlers_ApproveFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := NewMemoryRepository()
	svc := NewService(repo, &fakeUploader{})

	id, _, _ := repo.UpsertUpload(context.Background(), "rest-1", "menus/x/a.png", "a.png", "image/png")
	repo.uploads[id].Status = "EXTRACTED"
	repo.uploads[id].Result = sampleResult()

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("userID", "admin-1") })
	admin := NewAdminHandler(svc)
	r.GET("/admin/menus/pending", admin.PendingMenus)
	r.POST("/admin/menus/:id/approve", admin.ApproveMenu)
	r.POST("/admin/menus/:id/reject", admin.RejectMenu)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/admin/menus/pending", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("pending: expected 200, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"restaurant_id":"rest-1"`)) {
		t.Errorf("pending list missing the extracted upload: %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/admin/menus/1/approve", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("approve: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// Second approve must fail: the upload left EXTRACTED.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/admin/menus/1/approve", nil))
	if w.Code != http.StatusConflict {
		t.Errorf("double approve: expected 409, got %d", w.Code)
	}
}

func TestAdminHandlers_RejectRequiresReason(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := NewMemoryRepository()
	svc := NewService(repo, &fakeUploader{})

	id, _, _ := repo.UpsertUpload(context.Background(), "rest-1", "menus/x/a.png", "a.png", "image/png")
	repo.uploads[id].Status = "EXTRACTED"

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("userID", "admin-1") })
	admin := NewAdminHandler(svc)
	r.POST("/admin/menus/:id/reject", admin.RejectMenu)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/admin/menus/1/reject", bytes.NewBufferString(`{}`)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("reject without reason: expected 400, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/admin/menus/1/reject",
		bytes.NewBufferString(`{"reason":"prices unreadable"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("reject: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	st, _ := repo.GetStatus(context.Background(), "rest-1")
	if st.Status != "REJECTED" {
		t.Errorf("status after reject = %s, want REJECTED", st.Status)
	}
}
