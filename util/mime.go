package util

import (
	"mime"
	"path/filepath"
	"strings"
)

// MimeType guesses a content type from a file name. Unknown extensions
// fall back to application/octet-stream.
func MimeType(filename string) string {
	mimeType := mime.TypeByExtension(filepath.Ext(filename))
	if strings.Contains(mimeType, ";") {
		mimeType = strings.Split(mimeType, ";")[0]
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	return mimeType
}
