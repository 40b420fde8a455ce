// Package schema provides declarative request schemas and a pure validator.
// A schema is plain data: construct it once, reuse it across requests.
package schema

// Kind is the base JSON type a field must have.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindArray
	KindObject
)

// Format names a refinement applied after the base type check passes.
type Format int

const (
	FormatNone Format = iota
	FormatEmail
)

// Field describes the required shape and constraints of a single value.
// Fields compose: an object field embeds child Fields, an array field
// declares an element Field.
type Field struct {
	kind     Kind
	optional bool
	minLen   *int
	maxLen   *int
	format   Format
	elem     *Field
	fields   map[string]*Field
}

// String declares a required string field.
func String() *Field {
	return &Field{kind: KindString}
}

// Number declares a required numeric field.
func Number() *Field {
	return &Field{kind: KindNumber}
}

// Bool declares a required boolean field.
func Bool() *Field {
	return &Field{kind: KindBool}
}

// Array declares a required array field whose elements match elem.
func Array(elem *Field) *Field {
	return &Field{kind: KindArray, elem: elem}
}

// Object declares a required object field with the given named children.
func Object(fields map[string]*Field) *Field {
	return &Field{kind: KindObject, fields: fields}
}

// Optional marks the field as optional: absence is a valid state, not an
// error. A present value must still match the declared type.
func (f *Field) Optional() *Field {
	f.optional = true
	return f
}

// Min sets the minimum string length or minimum array element count.
func (f *Field) Min(n int) *Field {
	f.minLen = &n
	return f
}

// Max sets the maximum string length or maximum array element count.
func (f *Field) Max(n int) *Field {
	f.maxLen = &n
	return f
}

// Email refines a string field to require an email-shaped value.
func (f *Field) Email() *Field {
	f.format = FormatEmail
	return f
}
