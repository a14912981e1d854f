package ocr

import (
	"context"
	"errors"
	"fmt"
	"os"

	"menuflow/internal/extraction"
)

// TextExtractor turns images and PDFs into raw text for the heuristic
// pipeline. Implements extraction.TextExtractor.
type TextExtractor struct{}

func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

func (t *TextExtractor) ExtractText(
	ctx context.Context,
	doc extraction.Document,
	media extraction.MediaType,
) (string, error) {

	switch media {
	case extraction.MediaPDF:
		if err := ValidatePDF(doc.Data); err != nil {
			return "", err
		}
		return ExtractPDFText(doc.Data)

	case extraction.MediaImage:
		return t.ocrImage(ctx, doc.Data)

	default:
		return "", fmt.Errorf("no text extraction for media type %q", media)
	}
}

// ocrImage writes the image to a temp file for the tesseract binary.
func (t *TextExtractor) ocrImage(ctx context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty image")
	}

	tmp, err := os.CreateTemp("", "menu-*.img")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	return ExtractImageText(ctx, tmp.Name())
}
