package util

import (
	"io"
	"net/http"
)

// GetSafeContentType sniffs the real content type from the first bytes of the
// stream instead of trusting the client-supplied header, then rewinds.
func GetSafeContentType(file io.ReadSeeker) (string, error) {
	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	return http.DetectContentType(buf[:n]), nil
}
