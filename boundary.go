package mpenc

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// MediaType is the media type declared for content negotiation. The outer
// Content-Type header additionally carries the boundary parameter; see
// [Encoder.FormDataContentType].
const MediaType = "multipart/form-data"

// DefaultBoundary is the boundary token used by [Marshal] and by encoders
// constructed without [WithBoundary] or [WithRandomBoundary]. It is fixed so
// that repeated renders of equal input produce byte-identical bodies.
const DefaultBoundary = "BoUnDaRyStRiNgetpvelarptriznzsespgfmagoxpjpjluxkwqroqgsilzbdfsfgffddg"

func randomBoundary() string {
	return uuid.NewString()
}

// validateBoundary enforces rfc2046#section-5.1.1.
func validateBoundary(boundary string) error {
	if len(boundary) < 1 || len(boundary) > 69 {
		return errors.New("mpenc: invalid boundary length")
	}
	for _, b := range boundary {
		if 'A' <= b && b <= 'Z' || 'a' <= b && b <= 'z' || '0' <= b && b <= '9' {
			continue
		}
		switch b {
		case '\'', '(', ')', '+', '_', ',', '-', '.', '/', ':', '=', '?':
			continue
		}
		return errors.New("mpenc: invalid boundary character")
	}
	return nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
