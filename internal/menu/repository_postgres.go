package menu

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"menuflow/internal/extraction"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Upload lifecycle
// --------------------------------------------------

func (r *PostgresRepository) UpsertUpload(
	ctx context.Context,
	restaurantID string,
	objectKey string,
	filename string,
	mimeType string,
) (int, string, error) {

	var (
		id     int
		status string
	)

	err := r.db.QueryRow(ctx, `
		INSERT INTO menu_uploads (restaurant_id, object_key, filename, mime_type, status)
		VALUES ($1, $2, $3, $4, 'MENU_UPLOADED')
		ON CONFLICT (restaurant_id)
		DO UPDATE SET
			object_key = EXCLUDED.object_key,
			filename = EXCLUDED.filename,
			mime_type = EXCLUDED.mime_type,
			status = CASE
				WHEN menu_uploads.status = 'APPROVED' THEN menu_uploads.status
				ELSE 'MENU_UPLOADED'
			END,
			extraction_error = NULL,
			updated_at = now()
		RETURNING id, status
	`, restaurantID, objectKey, filename, mimeType).Scan(&id, &status)
	if err != nil {
		return 0, "", err
	}

	return id, status, nil
}

func (r *PostgresRepository) GetStatus(ctx context.Context, restaurantID string) (*MenuStatus, error) {
	s := &MenuStatus{}
	err := r.db.QueryRow(ctx, `
		SELECT id, status, extraction_error, updated_at
		FROM menu_uploads
		WHERE restaurant_id = $1
	`, restaurantID).Scan(&s.ID, &s.Status, &s.Error, &s.UpdatedAt)
	if err != nil {
		return nil, errors.New("no menu upload found")
	}
	return s, nil
}

func (r *PostgresRepository) GetUpload(ctx context.Context, uploadID int) (*MenuUpload, error) {
	u := &MenuUpload{}
	var result []byte

	err := r.db.QueryRow(ctx, `
		SELECT id, restaurant_id, object_key, filename, mime_type,
		       status, extraction_error, result, created_at, updated_at
		FROM menu_uploads
		WHERE id = $1
	`, uploadID).Scan(
		&u.ID, &u.RestaurantID, &u.ObjectKey, &u.Filename, &u.MimeType,
		&u.Status, &u.Error, &result, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, errors.New("menu upload not found")
	}

	if len(result) > 0 {
		parsed := &extraction.ExtractionResult{}
		if err := json.Unmarshal(result, parsed); err == nil {
			u.Result = parsed
		}
	}
	return u, nil
}

func (r *PostgresRepository) RetryFailed(ctx context.Context, restaurantID string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE menu_uploads
		SET status = 'MENU_UPLOADED',
		    extraction_error = NULL,
		    updated_at = now()
		WHERE restaurant_id = $1 AND status = 'FAILED'
	`, restaurantID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("no failed menu upload to retry")
	}
	return nil
}

// --------------------------------------------------
// Admin approval
// --------------------------------------------------

func (r *PostgresRepository) ListPending(ctx context.Context) ([]MenuUpload, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, restaurant_id, object_key, filename, mime_type,
		       status, extraction_error, result, created_at, updated_at
		FROM menu_uploads
		WHERE status = 'EXTRACTED'
		ORDER BY updated_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var uploads []MenuUpload
	for rows.Next() {
		u := MenuUpload{}
		var result []byte
		if err := rows.Scan(
			&u.ID, &u.RestaurantID, &u.ObjectKey, &u.Filename, &u.MimeType,
			&u.Status, &u.Error, &result, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if len(result) > 0 {
			parsed := &extraction.ExtractionResult{}
			if err := json.Unmarshal(result, parsed); err == nil {
				u.Result = parsed
			}
		}
		uploads = append(uploads, u)
	}
	return uploads, rows.Err()
}

func (r *PostgresRepository) Approve(ctx context.Context, uploadID int, adminID string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE menu_uploads
		SET status = 'APPROVED',
		    approved_at = now(),
		    approved_by = $1,
		    updated_at = now()
		WHERE id = $2 AND status = 'EXTRACTED'
	`, adminID, uploadID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("menu upload is not awaiting approval")
	}
	return nil
}

func (r *PostgresRepository) Reject(ctx context.Context, uploadID int, adminID string, reason string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE menu_uploads
		SET status = 'REJECTED',
		    approved_by = $1,
		    rejection_reason = $2,
		    updated_at = now()
		WHERE id = $3 AND status = 'EXTRACTED'
	`, adminID, reason, uploadID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("menu upload is not awaiting approval")
	}
	return nil
}

// --------------------------------------------------
// Taxonomy
// --------------------------------------------------

func (r *PostgresRepository) ListCategories(ctx context.Context, restaurantID string) ([]Category, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, restaurant_id, name, description, position
		FROM categories
		WHERE restaurant_id = $1
		ORDER BY position, name
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		c := Category{}
		if err := rows.Scan(&c.ID, &c.RestaurantID, &c.Name, &c.Description, &c.Position); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) CreateCategory(ctx context.Context, c *Category) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO categories (id, restaurant_id, name, description, position)
		VALUES ($1, $2, $3, $4, $5)
	`, c.ID, c.RestaurantID, c.Name, c.Description, c.Position)
	return err
}

func (r *PostgresRepository) CreateItem(ctx context.Context, it *Item) error {
	if it.ID == "" {
		it.ID = uuid.New().String()
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO menu_items (id, restaurant_id, category_id, name, description, price, currency, available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, it.ID, it.RestaurantID, it.CategoryID, it.Name, it.Description, it.Price, it.Currency, it.Available)
	return err
}

func (r *PostgresRepository) ListItems(ctx context.Context, restaurantID string) ([]Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, restaurant_id, category_id, name, description, price, currency, available
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY category_id, name
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		it := Item{}
		if err := rows.Scan(
			&it.ID, &it.RestaurantID, &it.CategoryID, &it.Name,
			&it.Description, &it.Price, &it.Currency, &it.Available,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
