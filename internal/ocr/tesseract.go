package ocr

import (
	"context"
	"os/exec"
)

// ExtractImageText shells out to tesseract for a single image file.
// The OCR engine is a black box; stdout is the extracted text.
func ExtractImageText(ctx context.Context, filePath string) (string, error) {
	cmd := exec.CommandContext(ctx, "tesseract", filePath, "stdout")
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
