// Package media normalizes the base64 payloads clients submit for screen
// captures and audio clips.
package media

import (
	"encoding/base64"
	"net/http"
	"strings"
)

// DecodeBase64 decodes a base64 payload that may carry a data-URL prefix
// ("data:<mime>;base64,<payload>"). When a prefix is present its MIME type
// is returned as a hint. Standard encoding is tried first, then URL-safe.
func DecodeBase64(s string) ([]byte, string, error) {
	s = strings.TrimSpace(s)

	var hintMIME string
	if strings.HasPrefix(s, "data:") {
		if idx := strings.IndexByte(s, ','); idx > 0 {
			meta := s[len("data:"):idx] // "<mime>;base64"
			if semi := strings.IndexByte(meta, ';'); semi >= 0 {
				hintMIME = meta[:semi]
			} else {
				hintMIME = meta
			}
			s = s[idx+1:]
		}
	}

	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, hintMIME, nil
	}
	b, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return nil, "", err
	}
	return b, hintMIME, nil
}

// PickMIME resolves a MIME type: the data-URL hint first, then content
// sniffing, with image/png as the final fallback for screen captures.
func PickMIME(hint string, data []byte) string {
	if h := strings.TrimSpace(hint); h != "" {
		return h
	}
	if len(data) > 0 {
		if ct := http.DetectContentType(data); ct != "application/octet-stream" {
			return ct
		}
	}
	return "image/png"
}
