package subfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_Kinds(t *testing.T) {
	assert.True(t, Value{}.IsNull())
	assert.Equal(t, ValueKindNull, NullValue().Kind())
	assert.Equal(t, ValueKindBool, BoolValue(true).Kind())
	assert.Equal(t, ValueKindNumber, NumberValue(1).Kind())
	assert.Equal(t, ValueKindString, StringValue("s").Kind())
	assert.Equal(t, ValueKindObject, ObjectValue(nil).Kind())
	assert.Equal(t, ValueKindList, ListValue(nil).Kind())
}

func TestValue_Interface(t *testing.T) {
	v := ObjectValue([]Field{
		{Key: "n", Value: NumberValue(1.5)},
		{Key: "s", Value: StringValue("x")},
		{Key: "b", Value: BoolValue(true)},
		{Key: "nothing", Value: NullValue()},
		{Key: "list", Value: ListValue([]Value{NumberValue(2)})},
	})

	assert.Equal(t, map[string]any{
		"n":       1.5,
		"s":       "x",
		"b":       true,
		"nothing": nil,
		"list":    []any{float64(2)},
	}, v.Interface())
}

func TestValue_PrimitiveString(t *testing.T) {
	tests := []struct {
		name   string
		value  Value
		want   string
		wantOK bool
	}{
		{name: "string", value: StringValue("x"), want: "x", wantOK: true},
		{name: "integer number", value: NumberValue(42), want: "42", wantOK: true},
		{name: "fractional number", value: NumberValue(0.25), want: "0.25", wantOK: true},
		{name: "bool", value: BoolValue(false), want: "false", wantOK: true},
		{name: "null has no text form", value: NullValue(), wantOK: false},
		{name: "object has no text form", value: ObjectValue(nil), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := tt.value.primitiveString()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, s)
		})
	}
}
