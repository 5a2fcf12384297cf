package eval

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/glossa/runtime"
)

// Value is a value of the language. Type is one of the runtime's tag types.
type Value struct {
	Type int8
	Data interface{}
}

// Null is the value of side-effect-only clauses.
var Null = Value{Type: runtime.Undefined}

// Number creates a numeric value.
func Number(x float64) Value {
	return Value{Type: runtime.FloatType, Data: x}
}

// String creates a string value.
func String(s string) Value {
	return Value{Type: runtime.StringType, Data: s}
}

// Bool creates a boolean value.
func Bool(b bool) Value {
	return Value{Type: runtime.BooleanType, Data: b}
}

// AsNumber returns the number held by v, if v is numeric.
func (v Value) AsNumber() (float64, bool) {
	x, ok := v.Data.(float64)
	return x, ok && v.Type == runtime.FloatType
}

// AsString returns the string held by v, if v is a string.
func (v Value) AsString() (string, bool) {
	s, ok := v.Data.(string)
	return s, ok && v.Type == runtime.StringType
}

// AsBool returns the boolean held by v, if v is a boolean.
func (v Value) AsBool() (bool, bool) {
	b, ok := v.Data.(bool)
	return b, ok && v.Type == runtime.BooleanType
}

// IsNull is a predicate: is v the null value?
func (v Value) IsNull() bool {
	return v.Type == runtime.Undefined
}

// Equal is a predicate: do v and w have the same type and data?
func (v Value) Equal(w Value) bool {
	return v.Type == w.Type && v.Data == w.Data
}

func (v Value) String() string {
	switch v.Type {
	case runtime.FloatType:
		x, _ := v.AsNumber()
		return strconv.FormatFloat(x, 'g', -1, 64)
	case runtime.StringType:
		s, _ := v.AsString()
		return s
	case runtime.BooleanType:
		b, _ := v.AsBool()
		if b {
			return "yes"
		}
		return "ne"
	case runtime.Undefined:
		return "null"
	}
	return fmt.Sprintf("<value %d:%v>", v.Type, v.Data)
}

// literal interprets a word as a number, boolean or string.
func literal(word string) Value {
	if x, err := strconv.ParseFloat(word, 64); err == nil {
		return Number(x)
	}
	switch word {
	case "yes":
		return Bool(true)
	case "ne":
		return Bool(false)
	}
	return String(word)
}
