package extraction

import (
	"context"
	"errors"
	"log"
	"path/filepath"
	"strings"
)

// MediaType is the coarse document class used for pipeline dispatch.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaPDF   MediaType = "pdf"
	MediaCSV   MediaType = "csv"
	MediaExcel MediaType = "excel"
)

// ErrExcelUnsupported rejects spreadsheet uploads with actionable
// guidance. Never retried, never downgraded.
var ErrExcelUnsupported = errors.New("excel files are not supported: export the sheet as CSV and upload that instead")

// Document is an opaque source document plus its declared media type.
// Not retained after text extraction.
type Document struct {
	Data     []byte
	MimeType string
	Filename string
}

// VisionExtractor is the external AI collaborator. Treated as untrusted
// and unreliable: any error or malformed shape is a failure, never a
// partial success.
type VisionExtractor interface {
	ExtractMenu(ctx context.Context, doc Document, existing []ExistingCategoryRef) (*ExtractionResult, error)
}

// TextExtractor turns an image or PDF into raw text for the heuristic
// pipeline (OCR or PDF text-layer reconstruction).
type TextExtractor interface {
	ExtractText(ctx context.Context, doc Document, media MediaType) (string, error)
}

// Config carries everything one extraction call needs. It is passed in
// explicitly so concurrent documents and tenants never share state.
type Config struct {
	DefaultCurrency CurrencyCode
	Vision          VisionExtractor
	Text            TextExtractor
}

// Extractor dispatches a document to the right pipeline and reconciles
// the detected categories against the tenant taxonomy.
type Extractor struct {
	cfg Config
}

func New(cfg Config) *Extractor {
	if cfg.DefaultCurrency == CurrencyUnknown {
		cfg.DefaultCurrency = DefaultCurrency
	}
	return &Extractor{cfg: cfg}
}

// DetectMediaType classifies by MIME type first, file extension second,
// and defaults to image when neither is recognized.
func DetectMediaType(mimeType, filename string) MediaType {
	mime := strings.ToLower(strings.TrimSpace(mimeType))
	switch {
	case strings.Contains(mime, "pdf"):
		return MediaPDF
	case strings.Contains(mime, "csv"):
		return MediaCSV
	case strings.Contains(mime, "spreadsheetml"), strings.Contains(mime, "ms-excel"):
		return MediaExcel
	case strings.HasPrefix(mime, "image/"):
		return MediaImage
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return MediaPDF
	case ".csv":
		return MediaCSV
	case ".xls", ".xlsx":
		return MediaExcel
	}
	return MediaImage
}

// Extract runs the full pipeline for one document: type dispatch, AI
// vision attempt with silent heuristic fallback, then category
// reconciliation. The returned result is immutable from the caller's
// perspective; reconciliation decisions are attached as a side map and
// never mutate the categories themselves.
func (e *Extractor) Extract(ctx context.Context, doc Document, existing []ExistingCategoryRef) (*ExtractionResult, error) {
	media := DetectMediaType(doc.MimeType, doc.Filename)

	var (
		result *ExtractionResult
		err    error
	)

	switch media {
	case MediaExcel:
		return nil, ErrExcelUnsupported
	case MediaCSV:
		result, err = e.extractCSV(doc)
	default:
		result, err = e.extractVisual(ctx, doc, media, existing)
	}
	if err != nil {
		return nil, err
	}

	if len(existing) > 0 && len(result.DetectedCategoryNames) > 0 {
		matches := make(map[string]CategoryMatchDecision, len(result.DetectedCategoryNames))
		for _, name := range result.DetectedCategoryNames {
			matches[name] = MatchCategory(name, existing)
		}
		result.CategoryMatches = matches
	}

	return result, nil
}

func (e *Extractor) extractCSV(doc Document) (*ExtractionResult, error) {
	currency := DetectCurrency(string(doc.Data), e.cfg.DefaultCurrency)
	categories, err := ParseCSV(doc.Data, currency)
	if err != nil {
		return nil, err
	}
	categories = PostProcess(categories)
	return e.finish(categories, "", currency), nil
}

func (e *Extractor) extractVisual(ctx context.Context, doc Document, media MediaType, existing []ExistingCategoryRef) (*ExtractionResult, error) {
	if e.cfg.Vision != nil {
		res, err := e.cfg.Vision.ExtractMenu(ctx, doc, existing)
		if err == nil && res != nil && len(res.Categories) > 0 {
			if len(res.DetectedCategoryNames) == 0 {
				res.DetectedCategoryNames = categoryNames(res.Categories)
			}
			if res.Currency == CurrencyUnknown {
				res.Currency = e.cfg.DefaultCurrency
			}
			return res, nil
		}
		// The one place a failure is recovered locally: the AI
		// collaborator is best-effort, the heuristic pipeline is not.
		if err != nil {
			log.Printf("EXTRACT_VISION_FALLBACK file=%s err=%v", doc.Filename, err)
		} else {
			log.Printf("EXTRACT_VISION_FALLBACK file=%s err=empty result", doc.Filename)
		}
	}

	if e.cfg.Text == nil {
		return nil, errors.New("no text extractor configured")
	}

	text, err := e.cfg.Text.ExtractText(ctx, doc, media)
	if err != nil {
		return nil, err
	}

	currency := DetectCurrency(text, e.cfg.DefaultCurrency)
	categories := PostProcess(ParseLines(SplitLines(text), currency))
	return e.finish(categories, text, currency), nil
}

// finish assembles the result, substituting the failure sentinel when
// the pipeline produced nothing reviewable.
func (e *Extractor) finish(categories []ParsedCategory, rawText string, currency CurrencyCode) *ExtractionResult {
	if len(categories) == 0 {
		categories = []ParsedCategory{sentinelCategory()}
	}
	return &ExtractionResult{
		Categories:            categories,
		RawText:               rawText,
		DetectedCategoryNames: categoryNames(categories),
		Currency:              currency,
	}
}

func categoryNames(categories []ParsedCategory) []string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		if IsSentinel(c) {
			continue
		}
		names = append(names, c.Name)
	}
	return names
}
