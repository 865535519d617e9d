package mpenc

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"sort"
)

// Marshaler is the interface implemented by types that can marshal themselves
// into a textual form value. Implementations are encoded as plain text parts
// regardless of their underlying type.
type Marshaler interface {
	MarshalForm() (string, error)
}

// EncodeToString is a convenience function that returns the multipart
// encoding of v as a string.
func EncodeToString(v interface{}) (string, error) {
	b, err := Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Marshal returns the multipart/form-data encoding of v using
// [DefaultBoundary].
//
// v may be a [Form], whose fields are rendered in order; a map with string
// keys, whose fields are rendered in sorted key order; or a struct or pointer
// to struct, whose fields are rendered in declaration order honouring `form`
// tags.
//
// Field values are dispatched on their runtime shape. Strings become text
// parts with no Content-Type header. Numbers, booleans, nils, maps and
// structs are serialized to compact JSON and sent as application/json.
// Values satisfying [io.Reader] become file parts: the reader is drained
// from its current position and its optional Name and ContentType methods
// supply the filename and media type. A []byte is written verbatim as a
// headerless part. Any other slice or array expands into one part per
// element under the same field name, except that a nested slice or array
// element is serialized as a single JSON part rather than expanded further.
// Anything else fails with [*UnsupportedTypeError] and no bytes are
// returned.
func Marshal(v interface{}) ([]byte, error) {
	s := &encodeState{boundary: DefaultBoundary}
	return s.marshal(v)
}

var crlf = []byte("\r\n")

// encodeState accumulates the byte lines of one render. A fresh state is
// created per call, so encoders sharing a boundary remain safe for
// concurrent use.
type encodeState struct {
	boundary string
	detect   bool
	lines    [][]byte
}

func (s *encodeState) marshal(v interface{}) ([]byte, error) {
	if err := s.encodeTop(v); err != nil {
		return nil, err
	}
	s.lines = append(s.lines, []byte("--"+s.boundary+"--"), nil)
	return bytes.Join(s.lines, crlf), nil
}

func (s *encodeState) encodeTop(v interface{}) error {
	switch t := v.(type) {
	case nil:
		return nil
	case Form:
		return s.encodeForm(t)
	case *Form:
		if t == nil {
			return nil
		}
		return s.encodeForm(*t)
	case []Field:
		return s.encodeForm(t)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		return s.encodeStruct(rv)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return fmt.Errorf("mpenc: map keys must be strings")
		}
		return s.encodeMap(rv)
	default:
		return fmt.Errorf("mpenc: top-level value must be Form, map or struct")
	}
}

func (s *encodeState) encodeForm(fields []Field) error {
	for _, f := range fields {
		if err := s.encodeField(f.Name, reflect.ValueOf(f.Value)); err != nil {
			return err
		}
	}
	return nil
}

// encodeMap renders map entries in sorted key order so that equal maps
// always produce identical bodies.
func (s *encodeState) encodeMap(v reflect.Value) error {
	type pair struct {
		key string
		val reflect.Value
	}
	pairs := make([]pair, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		pairs = append(pairs, pair{iter.Key().String(), iter.Value()})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].key < pairs[j].key })

	for _, p := range pairs {
		if err := s.encodeField(p.key, p.val); err != nil {
			return err
		}
	}
	return nil
}

func (s *encodeState) encodeStruct(v reflect.Value) error {
	tags := tags(v.Type())
	for i := 0; i < v.NumField(); i++ {
		tag := tags[i]
		if tag.Ignore {
			continue
		}
		fv := v.Field(i)
		if tag.Omit && isEmptyValue(fv) {
			continue
		}
		if tag.Name == "" {
			continue
		}
		if err := s.encodeField(tag.Name, fv); err != nil {
			return err
		}
	}
	return nil
}

// encodeField classifies a single value and appends its part(s). The
// precedence is fixed: custom Marshaler, then string, then JSON scalars,
// then reader capability, then structured objects, then collections. The
// reader check runs before the struct check because a struct may satisfy
// io.Reader, in which case it is a file, not a JSON object.
func (s *encodeState) encodeField(name string, v reflect.Value) error {
	v = indirect(v)

	// An absent value is still a field; it renders as a JSON null part.
	if !v.IsValid() {
		return s.appendJSON(name, nil)
	}

	if m, ok := asMarshaler(v); ok {
		str, err := m.MarshalForm()
		if err != nil {
			return err
		}
		s.appendText(name, str)
		return nil
	}

	switch v.Kind() {
	case reflect.String:
		s.appendText(name, v.String())
		return nil
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return s.appendJSON(name, v.Interface())
	}

	if r, ok := asReader(v); ok {
		return s.appendFile(name, r)
	}

	switch v.Kind() {
	case reflect.Map, reflect.Struct:
		return s.appendJSON(name, v.Interface())
	case reflect.Slice, reflect.Array:
		if isBinary(v) {
			s.appendRaw(name, v.Bytes())
			return nil
		}
		return s.encodeRepeated(name, v)
	}

	return &UnsupportedTypeError{Field: name, Type: v.Type()}
}

// encodeRepeated expands a collection into one part per element under the
// same field name. A nested slice or array element is serialized as a single
// JSON part rather than flattened into further parts.
func (s *encodeState) encodeRepeated(name string, v reflect.Value) error {
	for i := 0; i < v.Len(); i++ {
		elem := indirect(v.Index(i))
		if !elem.IsValid() {
			if err := s.appendJSON(name, nil); err != nil {
				return err
			}
			continue
		}
		if (elem.Kind() == reflect.Slice || elem.Kind() == reflect.Array) && !isBinary(elem) {
			if err := s.appendJSON(name, elem.Interface()); err != nil {
				return err
			}
			continue
		}
		if err := s.encodeField(name, elem); err != nil {
			return err
		}
	}
	return nil
}

// indirect unwraps interfaces and pointers. A nil at any level collapses to
// the invalid value, which encodes as JSON null.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func asMarshaler(v reflect.Value) (Marshaler, bool) {
	if !v.CanInterface() {
		return nil, false
	}
	if m, ok := v.Interface().(Marshaler); ok {
		return m, true
	}
	if v.CanAddr() {
		if m, ok := v.Addr().Interface().(Marshaler); ok {
			return m, true
		}
	}
	return nil, false
}

func asReader(v reflect.Value) (io.Reader, bool) {
	if !v.CanInterface() {
		return nil, false
	}
	if r, ok := v.Interface().(io.Reader); ok {
		return r, true
	}
	if v.CanAddr() {
		if r, ok := v.Addr().Interface().(io.Reader); ok {
			return r, true
		}
	}
	return nil, false
}

func isBinary(v reflect.Value) bool {
	return v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Interface, reflect.Pointer:
		return v.IsZero()
	}
	return false
}
