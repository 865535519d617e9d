package mpenc_test

import (
	"strings"

	"github.com/tomasbasham/mpenc"
)

const boundary = mpenc.DefaultBoundary

// envelope joins the given lines, the closing boundary and the trailing
// empty line with CRLF, mirroring the wire format of a complete body.
func envelope(lines ...string) []byte {
	lines = append(lines, "--"+boundary+"--", "")
	return []byte(strings.Join(lines, "\r\n"))
}

type Attachment struct {
	Title  string   `form:"title"`
	Tags   []string `form:"tags"`
	Draft  bool     `form:"draft,omitempty"`
	Secret string   `form:"-"`
}

type Priority int

const (
	Low Priority = iota
	High
)

func (p Priority) MarshalForm() (string, error) {
	if p == High {
		return "high", nil
	}
	return "low", nil
}

func intPointer(i int) *int { return &i }
