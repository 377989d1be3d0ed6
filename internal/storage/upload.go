package storage

import (
	"errors"
	"mime/multipart"
	"strings"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// ValidateImageType rejects uploads that are not browser-displayable photos.
func ValidateImageType(header *multipart.FileHeader) error {
	contentType := strings.ToLower(header.Header.Get("Content-Type"))
	if !allowedImageTypes[contentType] {
		return errors.New("unsupported image type: " + contentType)
	}
	return nil
}
