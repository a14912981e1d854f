package ocr

import (
	"context"
	"log"
	"time"

	"menuflow/internal/extraction"
)

// Downloader fetches the uploaded source document from object storage.
type Downloader interface {
	Download(ctx context.Context, key string) ([]byte, error)
}

// CategorySource supplies the tenant's current category taxonomy for
// reconciliation.
type CategorySource interface {
	ListCategoryRefs(ctx context.Context, restaurantID string) ([]extraction.ExistingCategoryRef, error)
}

// Service is the extract worker: it claims one pending upload at a
// time, runs the extraction pipeline and stores the result for review.
type Service struct {
	jobs       JobStore
	storage    Downloader
	categories CategorySource
	extractor  *extraction.Extractor
}

func NewService(
	jobs JobStore,
	storage Downloader,
	categories CategorySource,
	extractor *extraction.Extractor,
) *Service {
	return &Service{
		jobs:       jobs,
		storage:    storage,
		categories: categories,
		extractor:  extractor,
	}
}

// ProcessOne picks ONE pending upload and processes it safely. Job
// failures are recorded on the job and never returned, so one bad
// document can not stall the worker loop.
func (s *Service) ProcessOne(ctx context.Context) error {
	job, err := s.jobs.FetchPending(ctx)
	if err != nil || job == nil {
		return err
	}

	log.Printf("EXTRACT_CLAIMED id=%d file=%s", job.ID, job.Filename)

	data, err := s.storage.Download(ctx, job.ObjectKey)
	if err != nil {
		log.Printf("EXTRACT_DOWNLOAD_FAILED id=%d err=%v", job.ID, err)
		_ = s.jobs.MarkFailed(ctx, job.ID, "could not download source document")
		return nil
	}

	existing, err := s.categories.ListCategoryRefs(ctx, job.RestaurantID)
	if err != nil {
		// Reconciliation is best-effort; extraction still runs.
		log.Printf("EXTRACT_CATEGORIES_UNAVAILABLE id=%d err=%v", job.ID, err)
		existing = nil
	}

	doc := extraction.Document{
		Data:     data,
		MimeType: job.MimeType,
		Filename: job.Filename,
	}

	result, err := s.extractor.Extract(ctx, doc, existing)
	if err != nil {
		log.Printf("EXTRACT_FAILED id=%d err=%v", job.ID, err)
		_ = s.jobs.MarkFailed(ctx, job.ID, err.Error())
		return nil
	}

	if err := s.jobs.SaveResult(ctx, job.ID, result); err != nil {
		log.Printf("EXTRACT_SAVE_FAILED id=%d err=%v", job.ID, err)
		return nil
	}

	log.Printf("EXTRACT_DONE id=%d categories=%d", job.ID, len(result.Categories))
	return nil
}

// Run processes uploads until ctx is cancelled.
func (s *Service) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Println("extract worker started")
	for {
		select {
		case <-ctx.Done():
			log.Println("extract worker stopped")
			return
		case <-ticker.C:
			if err := s.ProcessOne(ctx); err != nil {
				log.Printf("extract worker error: %v", err)
			}
		}
	}
}
