package subfmt

import "strconv"

// ValueKind identifies the variant held by a Value.
type ValueKind int

// Value kind constants
const (
	ValueKindNull ValueKind = iota
	ValueKindBool
	ValueKindNumber
	ValueKindString
	ValueKindObject
	ValueKindList
)

// Value kind string names for debugging
const (
	ValueKindNameNull   = "NULL"
	ValueKindNameBool   = "BOOL"
	ValueKindNameNumber = "NUMBER"
	ValueKindNameString = "STRING"
	ValueKindNameObject = "OBJECT"
	ValueKindNameList   = "LIST"
)

// String returns the string representation of the value kind.
func (k ValueKind) String() string {
	switch k {
	case ValueKindBool:
		return ValueKindNameBool
	case ValueKindNumber:
		return ValueKindNameNumber
	case ValueKindString:
		return ValueKindNameString
	case ValueKindObject:
		return ValueKindNameObject
	case ValueKindList:
		return ValueKindNameList
	default:
		return ValueKindNameNull
	}
}

// Field is one key/value pair of an object Value. Field order is
// significant: it mirrors template declaration order.
type Field struct {
	Key   string
	Value Value
}

// Value is the structured result of evaluating a compiled plan: a closed
// variant over null, bool, number, string, object and list. Object fields
// keep their insertion order so that rendered output follows template
// declaration order unless key sorting is requested at render time.
//
// The zero Value is null.
type Value struct {
	kind   ValueKind
	b      bool
	n      float64
	s      string
	fields []Field
	items  []Value
}

// NullValue returns the null marker.
func NullValue() Value {
	return Value{kind: ValueKindNull}
}

// BoolValue returns a boolean Value.
func BoolValue(b bool) Value {
	return Value{kind: ValueKindBool, b: b}
}

// NumberValue returns a numeric Value.
func NumberValue(n float64) Value {
	return Value{kind: ValueKindNumber, n: n}
}

// StringValue returns a string Value.
func StringValue(s string) Value {
	return Value{kind: ValueKindString, s: s}
}

// ObjectValue returns an object Value with the given fields. The field
// slice is owned by the returned Value and must not be mutated afterward.
func ObjectValue(fields []Field) Value {
	return Value{kind: ValueKindObject, fields: fields}
}

// ListValue returns a list Value with the given items. The item slice is
// owned by the returned Value and must not be mutated afterward.
func ListValue(items []Value) Value {
	return Value{kind: ValueKindList, items: items}
}

// Kind returns the variant held by the Value.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsNull reports whether the Value is the null marker.
func (v Value) IsNull() bool {
	return v.kind == ValueKindNull
}

// Bool returns the boolean payload. Valid only for ValueKindBool.
func (v Value) Bool() bool {
	return v.b
}

// Number returns the numeric payload. Valid only for ValueKindNumber.
func (v Value) Number() float64 {
	return v.n
}

// Str returns the string payload. Valid only for ValueKindString.
func (v Value) Str() string {
	return v.s
}

// Fields returns the object fields in declaration order. Valid only for
// ValueKindObject. The returned slice must be treated as read-only.
func (v Value) Fields() []Field {
	return v.fields
}

// Items returns the list items in order. Valid only for ValueKindList.
// The returned slice must be treated as read-only.
func (v Value) Items() []Value {
	return v.items
}

// Interface converts the Value into plain Go data: nil, bool, float64,
// string, map[string]any or []any. Object field order is lost in the map
// form; use Fields or the JSON render surface when order matters.
func (v Value) Interface() any {
	switch v.kind {
	case ValueKindBool:
		return v.b
	case ValueKindNumber:
		return v.n
	case ValueKindString:
		return v.s
	case ValueKindObject:
		m := make(map[string]any, len(v.fields))
		for _, f := range v.fields {
			m[f.Key] = f.Value.Interface()
		}
		return m
	case ValueKindList:
		items := make([]any, len(v.items))
		for i, item := range v.items {
			items[i] = item.Interface()
		}
		return items
	default:
		return nil
	}
}

// primitiveString renders a scalar Value as text. Null and container
// values have no text form.
func (v Value) primitiveString() (string, bool) {
	switch v.kind {
	case ValueKindBool:
		return strconv.FormatBool(v.b), true
	case ValueKindNumber:
		return formatNumber(v.n), true
	case ValueKindString:
		return v.s, true
	default:
		return "", false
	}
}

// formatNumber renders a float the shortest way that round-trips.
func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
