package menu

import "context"

// Repository defines all database operations for menus
type Repository interface {

	// -------------------------------
	// Upload lifecycle
	// -------------------------------

	// Create OR replace the menu upload for a restaurant
	UpsertUpload(
		ctx context.Context,
		restaurantID string,
		objectKey string,
		filename string,
		mimeType string,
	) (uploadID int, status string, err error)

	// Read current upload status (FOR FRONTEND POLLING)
	GetStatus(ctx context.Context, restaurantID string) (*MenuStatus, error)

	GetUpload(ctx context.Context, uploadID int) (*MenuUpload, error)

	// Re-queue a FAILED upload
	RetryFailed(ctx context.Context, restaurantID string) error

	// -------------------------------
	// Admin approval
	// -------------------------------

	ListPending(ctx context.Context) ([]MenuUpload, error)
	Approve(ctx context.Context, uploadID int, adminID string) error
	Reject(ctx context.Context, uploadID int, adminID string, reason string) error

	// -------------------------------
	// Taxonomy
	// -------------------------------

	ListCategories(ctx context.Context, restaurantID string) ([]Category, error)
	CreateCategory(ctx context.Context, c *Category) error
	CreateItem(ctx context.Context, it *Item) error
	ListItems(ctx context.Context, restaurantID string) ([]Item, error)
}
