package ocr

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"menuflow/internal/extraction"
)

// PendingUpload is one claimed extraction job.
type PendingUpload struct {
	ID           int
	RestaurantID string
	ObjectKey    string
	Filename     string
	MimeType     string
}

// JobStore is the persistence contract of the extract worker.
type JobStore interface {
	// FetchPending claims the next upload waiting for extraction.
	// (nil, nil) when no jobs are available.
	FetchPending(ctx context.Context) (*PendingUpload, error)
	SaveResult(ctx context.Context, id int, result *extraction.ExtractionResult) error
	MarkFailed(ctx context.Context, id int, reason string) error
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// FetchPending retrieves and CLAIMS the next menu upload pending
// extraction. The claim is atomic: concurrent workers never pick the
// same job.
func (r *Repository) FetchPending(ctx context.Context) (*PendingUpload, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	job := &PendingUpload{}
	err = tx.QueryRow(ctx, `
		SELECT id, restaurant_id, object_key, filename, mime_type
		FROM menu_uploads
		WHERE status = 'MENU_UPLOADED'
		ORDER BY created_at
		LIMIT 1
		FOR UPDATE SKIP LOCKED
	`).Scan(&job.ID, &job.RestaurantID, &job.ObjectKey, &job.Filename, &job.MimeType)

	// No pending jobs is NOT an error
	if err != nil {
		return nil, nil
	}

	_, err = tx.Exec(ctx, `
		UPDATE menu_uploads
		SET status = 'EXTRACTING', updated_at = now()
		WHERE id = $1
	`, job.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return job, nil
}

// SaveResult stores the extraction outcome and flips the upload to
// EXTRACTED, ready for human review.
func (r *Repository) SaveResult(ctx context.Context, id int, result *extraction.ExtractionResult) error {
	doc, err := json.Marshal(result)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		UPDATE menu_uploads
		SET result = $1,
		    raw_text = $2,
		    status = 'EXTRACTED',
		    extraction_error = NULL,
		    updated_at = now()
		WHERE id = $3
	`, doc, result.RawText, id)
	return err
}

// MarkFailed records the failure reason so the tenant can retry.
func (r *Repository) MarkFailed(ctx context.Context, id int, reason string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE menu_uploads
		SET status = 'FAILED',
		    extraction_error = $1,
		    updated_at = now()
		WHERE id = $2
	`, reason, id)
	return err
}
