package mpenc_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tomasbasham/mpenc"
)

func TestEncoder(t *testing.T) {
	t.Parallel()

	form := mpenc.Form{
		{Name: "title", Value: "Test Item"},
		{Name: "number", Value: 33},
	}

	want, err := mpenc.Marshal(form)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := mpenc.NewEncoder(&buf).Encode(form); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(want, buf.Bytes()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEncoder_WithBoundary(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		boundary string
		wantErr  bool
	}{
		"simple token":     {boundary: "simple-boundary"},
		"default boundary": {boundary: mpenc.DefaultBoundary},
		"empty":            {boundary: "", wantErr: true},
		"too long":         {boundary: strings.Repeat("a", 70), wantErr: true},
		"invalid character": {
			boundary: "bad boundary",
			wantErr:  true,
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			enc := mpenc.NewEncoder(&buf, mpenc.WithBoundary(tt.boundary))
			err := enc.Encode(mpenc.Form{{Name: "note", Value: "hello"}})
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error: %v, got: %v", tt.wantErr, err)
			}
			if tt.wantErr {
				return
			}
			if !bytes.HasPrefix(buf.Bytes(), []byte("--"+tt.boundary+"\r\n")) {
				t.Errorf("expected body to open with boundary %q:\n%s", tt.boundary, buf.Bytes())
			}
			if !bytes.HasSuffix(buf.Bytes(), []byte("--"+tt.boundary+"--\r\n")) {
				t.Errorf("expected body to close with boundary %q:\n%s", tt.boundary, buf.Bytes())
			}
		})
	}
}

func TestEncoder_WithRandomBoundary(t *testing.T) {
	t.Parallel()

	var a, b bytes.Buffer
	e1 := mpenc.NewEncoder(&a, mpenc.WithRandomBoundary())
	e2 := mpenc.NewEncoder(&b, mpenc.WithRandomBoundary())

	if e1.Boundary() == mpenc.DefaultBoundary {
		t.Error("expected a generated boundary, got the default")
	}
	if e1.Boundary() == e2.Boundary() {
		t.Error("expected distinct boundaries per encoder")
	}

	if err := e1.Encode(mpenc.Form{{Name: "note", Value: "hello"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(a.Bytes(), []byte("--"+e1.Boundary()+"\r\n")) {
		t.Errorf("expected body to use the encoder's boundary:\n%s", a.Bytes())
	}
}

func TestEncoder_FormDataContentType(t *testing.T) {
	t.Parallel()

	enc := mpenc.NewEncoder(io.Discard)
	want := "multipart/form-data; boundary=" + mpenc.DefaultBoundary
	if got := enc.FormDataContentType(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	enc = mpenc.NewEncoder(io.Discard, mpenc.WithBoundary("demo"))
	if got := enc.FormDataContentType(); got != "multipart/form-data; boundary=demo" {
		t.Errorf("expected custom boundary in content type, got %q", got)
	}
}

func TestEncoder_NothingWrittenOnError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := mpenc.NewEncoder(&buf).Encode(mpenc.Form{{Name: "callback", Value: func() {}}})
	if err == nil {
		t.Fatal("expected an error")
	}
	if buf.Len() != 0 {
		t.Errorf("expected no partial body, got %d bytes", buf.Len())
	}
}
