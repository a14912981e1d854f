package ocr

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

var (
	// ErrCorruptPDF marks a file pdfcpu refuses to validate.
	ErrCorruptPDF = errors.New("pdf file is corrupt or not a valid pdf")

	// ErrEncryptedPDF marks a password-protected file. Surfaced
	// separately so the caller can show a specific message.
	ErrEncryptedPDF = errors.New("pdf file is encrypted")
)

// ValidatePDF distinguishes corrupt and encrypted files from readable
// ones before text extraction is attempted.
func ValidatePDF(data []byte) error {
	err := api.Validate(bytes.NewReader(data), nil)
	if err == nil {
		return nil
	}
	if strings.Contains(strings.ToLower(err.Error()), "encrypt") {
		return ErrEncryptedPDF
	}
	return ErrCorruptPDF
}

// ExtractPDFText reconstructs the text layer page by page. Glyphs are
// grouped into rows by their Y coordinate so multi-column price lines
// come out as single lines.
func ExtractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var pages []string
	for n := 1; n <= reader.NumPage(); n++ {
		page := reader.Page(n)
		if page.V.IsNull() {
			continue
		}
		text := rowsToText(page.Content().Text)
		if text != "" {
			pages = append(pages, text)
		}
	}
	return strings.Join(pages, "\n"), nil
}

type textRow struct {
	y        float64
	contents []string
}

func rowsToText(texts []pdf.Text) string {
	if len(texts) == 0 {
		return ""
	}

	const tolerance = 2.0
	var rows []textRow

	for _, t := range texts {
		content := strings.TrimSpace(t.S)
		if content == "" {
			continue
		}
		placed := false
		for i := range rows {
			if abs(rows[i].y-t.Y) < tolerance {
				rows[i].contents = append(rows[i].contents, content)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, textRow{y: t.Y, contents: []string{content}})
		}
	}

	// PDF coordinates grow upward; top of the page first.
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].y > rows[j].y })

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, strings.Join(r.contents, " "))
	}
	return strings.Join(lines, "\n")
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
