package upload

import (
	"errors"
	"mime/multipart"
)

var (
	ErrMissingFile       = errors.New("upload: no file attached")
	ErrUnsupportedFormat = errors.New("upload: unsupported file format")
)

// allowedTypes is the declared content-type allow-list for uploads.
var allowedTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
}

// Check classifies an uploaded file header. A nil header means the request
// carried no file. Only the declared content type is inspected; the payload
// bytes are never sniffed, so a mislabeled file passes validation and fails
// later at decode time.
func Check(header *multipart.FileHeader) error {
	if header == nil {
		return ErrMissingFile
	}
	if _, ok := allowedTypes[header.Header.Get("Content-Type")]; !ok {
		return ErrUnsupportedFormat
	}
	return nil
}
