package mpenc

import (
	"encoding/json"
	"io"
	"mime"
	"path/filepath"
)

// appendText emits a plain text part. Text parts carry no Content-Type
// header; text/plain is the multipart default.
func (s *encodeState) appendText(name, val string) {
	s.lines = append(s.lines,
		[]byte("--"+s.boundary),
		[]byte(disposition(name, "")),
		nil,
		[]byte(val),
	)
}

// appendRaw emits a headerless part whose body is written verbatim.
func (s *encodeState) appendRaw(name string, body []byte) {
	s.lines = append(s.lines,
		[]byte("--"+s.boundary),
		[]byte(disposition(name, "")),
		nil,
		body,
	)
}

// appendJSON emits a part holding the compact JSON serialization of val. A
// serialization failure aborts the render with the encoder's error.
func (s *encodeState) appendJSON(name string, val interface{}) error {
	body, err := json.Marshal(val)
	if err != nil {
		return err
	}
	s.lines = append(s.lines,
		[]byte("--"+s.boundary),
		[]byte(disposition(name, "")),
		[]byte("Content-Type: application/json"),
		nil,
		body,
	)
	return nil
}

// appendFile drains r and emits a file part. The filename is the base of the
// reader's optional Name, and the Content-Type is resolved in order of
// preference: the reader's optional ContentType, a lookup on the filename
// extension, magic-byte detection when enabled, and finally
// application/octet-stream.
func (s *encodeState) appendFile(name string, r io.Reader) error {
	var filename string
	if n, ok := r.(namer); ok {
		if path := n.Name(); path != "" {
			filename = filepath.Base(path)
		}
	}

	var ctype string
	if c, ok := r.(contentTyper); ok {
		ctype = c.ContentType()
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	if ctype == "" && filename != "" {
		ctype = mime.TypeByExtension(filepath.Ext(filename))
	}
	if ctype == "" && s.detect {
		ctype = detectContentType(body)
	}
	if ctype == "" {
		ctype = "application/octet-stream"
	}

	s.lines = append(s.lines,
		[]byte("--"+s.boundary),
		[]byte(disposition(name, filename)),
		[]byte("Content-Type: "+ctype),
		nil,
		body,
	)
	return nil
}

func disposition(name, filename string) string {
	d := `Content-Disposition: form-data; name="` + escapeQuotes(name) + `"`
	if filename != "" {
		d += `; filename="` + escapeQuotes(filename) + `"`
	}
	return d
}
