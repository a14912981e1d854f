package menu

import (
	"errors"
	"path/filepath"
	"strings"
)

var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".pdf":  true,
	".csv":  true,
}

// ErrExcelUpload is raised at upload time already, so the tenant gets
// the guidance before a worker ever touches the file.
var ErrExcelUpload = errors.New("excel files are not supported: export the sheet as CSV and upload that instead")

func ValidateFileExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))

	if ext == "" {
		return errors.New("file extension missing")
	}

	if ext == ".xls" || ext == ".xlsx" {
		return ErrExcelUpload
	}

	if !allowedExt[ext] {
		return errors.New("file type not allowed")
	}

	return nil
}
