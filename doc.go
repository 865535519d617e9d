// Package mpenc encodes ordered form data into a multipart/form-data body.
//
// Each field's value is inspected at runtime to decide how its part is
// written: strings become plain text parts; numbers, booleans, maps and
// structs become application/json parts; io.Reader values become file parts
// with a guessed Content-Type; and slices expand into one part per element
// under the same field name. The resulting byte sequence is suitable for use
// as an HTTP request or response body alongside a Content-Type header of
// multipart/form-data with the encoder's boundary.
package mpenc
