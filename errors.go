package mpenc

import (
	"reflect"
	"strconv"
)

// UnsupportedTypeError is returned by [Marshal] when a field holds a value
// that cannot be encoded as a multipart part. It reports the field name and
// the Go type of the offending value. No partial body is returned alongside
// it; the whole render is abandoned.
type UnsupportedTypeError struct {
	Field string
	Type  reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return "mpenc: unsupported type " + e.Type.String() + " for field " + strconv.Quote(e.Field)
}
