package mpenc

// Field is a single (name, value) pair of a form. Names need not be unique;
// the multipart format permits duplicate field names and repeated values are
// the idiomatic way to send collections.
type Field struct {
	Name  string
	Value interface{}
}

// Form is an ordered list of fields. Unlike a Go map it preserves insertion
// order, which the multipart body reproduces part for part, so it is the
// preferred input to [Marshal] whenever field order matters.
type Form []Field

// Add appends a field to the form and returns the extended form, allowing
// calls to be chained.
func (f Form) Add(name string, value interface{}) Form {
	return append(f, Field{Name: name, Value: value})
}
