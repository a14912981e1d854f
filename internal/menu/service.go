package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"menuflow/internal/extraction"
)

// Uploader stores the raw menu document and returns a public URL.
type Uploader interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type Service struct {
	repo    Repository
	storage Uploader
}

func NewService(repo Repository, storage Uploader) *Service {
	return &Service{repo: repo, storage: storage}
}

// --------------------------------------------------
// Tenant-facing operations
// --------------------------------------------------

func (s *Service) UploadMenu(
	ctx context.Context,
	restaurantID string,
	filename string,
	mimeType string,
	body io.Reader,
) (int, string, error) {

	if err := ValidateFileExtension(filename); err != nil {
		return 0, "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	key := fmt.Sprintf("menus/%s/%s%s", restaurantID, uuid.New().String(), ext)

	if _, err := s.storage.Upload(ctx, key, body, mimeType); err != nil {
		return 0, "", fmt.Errorf("store menu document: %w", err)
	}

	uploadID, status, err := s.repo.UpsertUpload(ctx, restaurantID, key, filename, mimeType)
	if err != nil {
		return 0, "", err
	}

	log.Printf("MENU_UPLOADED id=%d restaurant=%s file=%s", uploadID, restaurantID, filename)
	return uploadID, status, nil
}

func (s *Service) GetMenuStatus(ctx context.Context, restaurantID string) (*MenuStatus, error) {
	return s.repo.GetStatus(ctx, restaurantID)
}

func (s *Service) RetryMenu(ctx context.Context, restaurantID string) error {
	if err := s.repo.RetryFailed(ctx, restaurantID); err != nil {
		return err
	}
	log.Printf("MENU_RETRY restaurant=%s", restaurantID)
	return nil
}

func (s *Service) ListMenu(ctx context.Context, restaurantID string) ([]Category, []Item, error) {
	categories, err := s.repo.ListCategories(ctx, restaurantID)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.repo.ListItems(ctx, restaurantID)
	if err != nil {
		return nil, nil, err
	}
	return categories, items, nil
}

// ListCategoryRefs exposes the tenant's taxonomy to the extraction
// worker so new uploads can be matched against existing categories.
func (s *Service) ListCategoryRefs(ctx context.Context, restaurantID string) ([]extraction.ExistingCategoryRef, error) {
	categories, err := s.repo.ListCategories(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	refs := make([]extraction.ExistingCategoryRef, 0, len(categories))
	for _, c := range categories {
		refs = append(refs, extraction.ExistingCategoryRef{ID: c.ID, Name: c.Name})
	}
	return refs, nil
}

// --------------------------------------------------
// Admin operations
// --------------------------------------------------

func (s *Service) PendingMenus(ctx context.Context) ([]MenuUpload, error) {
	return s.repo.ListPending(ctx)
}

// ApproveMenu imports the extracted result into the restaurant's live
// taxonomy and marks the upload APPROVED. Import happens first so an
// import failure leaves the upload reviewable.
func (s *Service) ApproveMenu(ctx context.Context, uploadID int, adminID string) error {
	upload, err := s.repo.GetUpload(ctx, uploadID)
	if err != nil {
		return err
	}
	if upload.Status != "EXTRACTED" {
		return errors.New("menu upload is not awaiting approval")
	}
	if upload.Result == nil {
		return errors.New("menu upload has no extraction result")
	}

	imported, err := s.importResult(ctx, upload.RestaurantID, upload.Result)
	if err != nil {
		return fmt.Errorf("import extracted menu: %w", err)
	}

	if err := s.repo.Approve(ctx, uploadID, adminID); err != nil {
		return err
	}

	log.Printf("MENU_APPROVED id=%d restaurant=%s items=%d", uploadID, upload.RestaurantID, imported)
	return nil
}

func (s *Service) RejectMenu(ctx context.Context, uploadID int, adminID string, reason string) error {
	if err := s.repo.Reject(ctx, uploadID, adminID, reason); err != nil {
		return err
	}
	log.Printf("MENU_REJECTED id=%d reason=%q", uploadID, reason)
	return nil
}
