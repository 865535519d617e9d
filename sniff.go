package mpenc

import "github.com/h2non/filetype"

// detectContentType guesses a MIME type from magic bytes. It returns the
// empty string when the content matches nothing in the table, leaving the
// caller to fall back to application/octet-stream.
func detectContentType(data []byte) string {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return ""
	}
	return kind.MIME.Value
}
