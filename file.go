package mpenc

import "io"

// namer is the optional capability a reader may expose to suggest a filename
// for its part. *os.File satisfies it with the path passed to os.Open.
type namer interface {
	Name() string
}

// contentTyper is the optional capability a reader may expose to pin its
// part's Content-Type, bypassing extension lookup. An empty string is treated
// as absent.
type contentTyper interface {
	ContentType() string
}

// File attaches filename and content-type metadata to an arbitrary
// [io.Reader] so it encodes as a file part. Both Filename and Type are
// optional: an absent Filename omits the filename parameter from the part's
// Content-Disposition header, and an absent Type falls back to extension
// lookup and finally application/octet-stream.
//
// Readers that carry their own metadata, such as *os.File, can be passed to
// [Marshal] directly without this wrapper.
type File struct {
	Body     io.Reader
	Filename string
	Type     string
}

func (f File) Read(p []byte) (int, error) { return f.Body.Read(p) }

func (f File) Name() string { return f.Filename }

func (f File) ContentType() string { return f.Type }
