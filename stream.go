package mpenc

import "io"

// Option configures an [Encoder].
type Option func(*Encoder)

// WithBoundary sets the encoder's boundary token. The token must satisfy
// rfc2046#section-5.1.1; an invalid token surfaces as an error on the first
// call to [Encoder.Encode].
func WithBoundary(boundary string) Option {
	return func(e *Encoder) {
		if err := validateBoundary(boundary); err != nil {
			e.err = err
			return
		}
		e.boundary = boundary
	}
}

// WithRandomBoundary gives the encoder a freshly generated boundary,
// avoiding collisions with boundary-like content inside text parts.
func WithRandomBoundary() Option {
	return func(e *Encoder) {
		e.boundary = randomBoundary()
	}
}

// WithContentTypeDetection enables magic-byte detection of a file part's
// Content-Type when the reader declares none and its filename extension is
// missing or unrecognized.
func WithContentTypeDetection() Option {
	return func(e *Encoder) {
		e.detect = true
	}
}

// Encoder writes multipart/form-data bodies to an [io.Writer]. The zero
// options use [DefaultBoundary]. An Encoder is stateless between calls and
// may be shared by concurrent goroutines, provided no two calls drain the
// same reader.
type Encoder struct {
	w        io.Writer
	boundary string
	detect   bool
	err      error
}

// NewEncoder creates a new [Encoder] that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	e := &Encoder{w: w, boundary: DefaultBoundary}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode encodes v as a multipart body and writes it to the underlying
// [io.Writer]. Nothing is written when encoding fails.
func (e *Encoder) Encode(v interface{}) error {
	if e.err != nil {
		return e.err
	}

	s := &encodeState{boundary: e.boundary, detect: e.detect}
	data, err := s.marshal(v)
	if err != nil {
		return err
	}

	_, err = e.w.Write(data)
	return err
}

// Boundary returns the encoder's boundary token.
func (e *Encoder) Boundary() string { return e.boundary }

// FormDataContentType returns the value the caller should advertise in the
// outer Content-Type header for bodies produced by this encoder.
func (e *Encoder) FormDataContentType() string {
	return MediaType + "; boundary=" + e.boundary
}
