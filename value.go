package galena

import (
	"fmt"
	"strconv"
	"strings"

	"shanhu.io/text/lexing"
)

// ValueType tags the variant held by a Value.
type ValueType int

// Value variants.
const (
	NoValue ValueType = iota
	BoolValue
	IntValue
	StringValue
	ListValue
)

func (t ValueType) String() string {
	switch t {
	case NoValue:
		return "none"
	case BoolValue:
		return "bool"
	case IntValue:
		return "int"
	case StringValue:
		return "string"
	case ListValue:
		return "list"
	}
	return "unknown"
}

// Value is a script value: a closed variant of none, bool, int, string
// and list. The zero value is the none value.
type Value struct {
	typ  ValueType
	b    bool
	i    int64
	s    string
	list []Value
	pos  *lexing.Pos
}

// BoolVal makes a bool value.
func BoolVal(b bool, pos *lexing.Pos) Value {
	return Value{typ: BoolValue, b: b, pos: pos}
}

// IntVal makes an int value.
func IntVal(i int64, pos *lexing.Pos) Value {
	return Value{typ: IntValue, i: i, pos: pos}
}

// StringVal makes a string value.
func StringVal(s string, pos *lexing.Pos) Value {
	return Value{typ: StringValue, s: s, pos: pos}
}

// ListVal makes a list value.
func ListVal(list []Value, pos *lexing.Pos) Value {
	return Value{typ: ListValue, list: list, pos: pos}
}

// StringListVal makes a list value of strings, preserving order.
func StringListVal(strs []string, pos *lexing.Pos) Value {
	list := make([]Value, 0, len(strs))
	for _, s := range strs {
		list = append(list, StringVal(s, pos))
	}
	return ListVal(list, pos)
}

// Type returns the variant tag.
func (v Value) Type() ValueType { return v.typ }

// Pos returns the position the value originates from. May be nil.
func (v Value) Pos() *lexing.Pos { return v.pos }

// Bool returns the bool payload. Valid only for bool values.
func (v Value) Bool() bool { return v.b }

// Int returns the int payload. Valid only for int values.
func (v Value) Int() int64 { return v.i }

// Str returns the string payload. Valid only for string values.
func (v Value) Str() string { return v.s }

// List returns the list payload. Valid only for list values. The
// returned slice is the value's own backing; callers must not modify it.
func (v Value) List() []Value { return v.list }

func (v Value) checkType(want ValueType) error {
	if v.typ != want {
		return errAt(
			v.pos, ErrBadValue,
			"expected a %s value, got %s", want, v.typ,
		)
	}
	return nil
}

func (v Value) String() string {
	switch v.typ {
	case NoValue:
		return "<none>"
	case BoolValue:
		return strconv.FormatBool(v.b)
	case IntValue:
		return strconv.FormatInt(v.i, 10)
	case StringValue:
		return strconv.Quote(v.s)
	case ListValue:
		parts := make([]string, 0, len(v.list))
		for _, item := range v.list {
			parts = append(parts, item.String())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return fmt.Sprintf("<bad value type %d>", int(v.typ))
}

// stringList unpacks a list-of-string value into a plain string slice.
func stringList(v Value) ([]string, error) {
	if err := v.checkType(ListValue); err != nil {
		return nil, err
	}
	strs := make([]string, 0, len(v.list))
	for _, item := range v.list {
		if err := item.checkType(StringValue); err != nil {
			return nil, err
		}
		strs = append(strs, item.s)
	}
	return strs, nil
}
