package fotmob

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
)

// ValueKind identifies which variant a Value holds.
type ValueKind int

const (
	NullValue ValueKind = iota
	BoolValue
	NumberValue
	StringValue
	ArrayValue
	ObjectValue
)

// String returns the kind name
func (k ValueKind) String() string {
	switch k {
	case NullValue:
		return "null"
	case BoolValue:
		return "bool"
	case NumberValue:
		return "number"
	case StringValue:
		return "string"
	case ArrayValue:
		return "array"
	case ObjectValue:
		return "object"
	default:
		return "invalid"
	}
}

// Value is a decoded JSON value. The zero Value is null.
//
// Accessors never panic: asking an object for an index or a string for a key
// yields a null Value, and the typed getters report ok=false on a mismatch.
type Value struct {
	kind ValueKind
	b    bool
	num  json.Number
	str  string
	arr  []Value
	obj  map[string]Value
}

// Null returns the null Value.
func Null() Value { return Value{} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: BoolValue, b: b} }

// Number wraps a JSON number literal.
func Number(n json.Number) Value { return Value{kind: NumberValue, num: n} }

// Int wraps an integer.
func Int(n int64) Value { return Number(json.Number(strconv.FormatInt(n, 10))) }

// String wraps a string.
func String(s string) Value { return Value{kind: StringValue, str: s} }

// Array wraps a list of values.
func Array(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: ArrayValue, arr: items}
}

// Object wraps a map of values.
func Object(m map[string]Value) Value {
	if m == nil {
		m = map[string]Value{}
	}
	return Value{kind: ObjectValue, obj: m}
}

// Kind returns the variant held by v
func (v Value) Kind() ValueKind { return v.kind }

// IsNull reports whether v is JSON null (or a missing key)
func (v Value) IsNull() bool { return v.kind == NullValue }

// Get returns the member named key, or null when v is not an object or lacks the key
func (v Value) Get(key string) Value {
	if v.kind != ObjectValue {
		return Value{}
	}
	return v.obj[key]
}

// Lookup is Get with an explicit presence flag
func (v Value) Lookup(key string) (Value, bool) {
	if v.kind != ObjectValue {
		return Value{}, false
	}
	m, ok := v.obj[key]
	return m, ok
}

// Has reports whether the object has a member named key
func (v Value) Has(key string) bool {
	_, ok := v.Lookup(key)
	return ok
}

// Index returns the i-th element, or null when out of range or not an array
func (v Value) Index(i int) Value {
	if v.kind != ArrayValue || i < 0 || i >= len(v.arr) {
		return Value{}
	}
	return v.arr[i]
}

// Path walks nested objects by key.
func (v Value) Path(keys ...string) Value {
	cur := v
	for _, k := range keys {
		cur = cur.Get(k)
	}
	return cur
}

// Len returns the number of elements or members; 0 for scalars
func (v Value) Len() int {
	switch v.kind {
	case ArrayValue:
		return len(v.arr)
	case ObjectValue:
		return len(v.obj)
	}
	return 0
}

// Keys returns the object's member names in sorted order
func (v Value) Keys() []string {
	if v.kind != ObjectValue {
		return nil
	}
	keys := make([]string, 0, len(v.obj))
	for k := range v.obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Items returns the array's elements
func (v Value) Items() []Value {
	if v.kind != ArrayValue {
		return nil
	}
	return v.arr
}

// Members returns the object's members
func (v Value) Members() map[string]Value {
	if v.kind != ObjectValue {
		return nil
	}
	return v.obj
}

// AsString returns the string held by v
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == StringValue
}

// AsBool returns the boolean held by v
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == BoolValue
}

// AsInt returns the number held by v when it is an integer
func (v Value) AsInt() (int64, bool) {
	if v.kind != NumberValue {
		return 0, false
	}
	n, err := v.num.Int64()
	if err != nil {
		return 0, false
	}
	return n, true
}

// AsFloat returns the number held by v
func (v Value) AsFloat() (float64, bool) {
	if v.kind != NumberValue {
		return 0, false
	}
	f, err := v.num.Float64()
	if err != nil {
		return 0, false
	}
	return f, true
}

// AsNumber returns the raw number literal
func (v Value) AsNumber() (json.Number, bool) {
	return v.num, v.kind == NumberValue
}

// Native converts v to plain Go values: map[string]any, []any, string, bool,
// nil, and int for integral numbers (float64 otherwise).
func (v Value) Native() any {
	switch v.kind {
	case BoolValue:
		return v.b
	case NumberValue:
		if n, err := v.num.Int64(); err == nil && n >= math.MinInt && n <= math.MaxInt {
			return int(n)
		}
		f, _ := v.num.Float64()
		return f
	case StringValue:
		return v.str
	case ArrayValue:
		out := make([]any, len(v.arr))
		for i, item := range v.arr {
			out[i] = item.Native()
		}
		return out
	case ObjectValue:
		out := make(map[string]any, len(v.obj))
		for k, item := range v.obj {
			out[k] = item.Native()
		}
		return out
	}
	return nil
}

// FromNative converts the output of encoding/json (or Native) into a Value.
func FromNative(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Value{}, nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t), nil
	case string:
		return String(t), nil
	case int:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case float64:
		return Number(json.Number(strconv.FormatFloat(t, 'g', -1, 64))), nil
	case []any:
		items := make([]Value, len(t))
		for i, item := range t {
			conv, err := FromNative(item)
			if err != nil {
				return Value{}, err
			}
			items[i] = conv
		}
		return Array(items...), nil
	case map[string]any:
		members := make(map[string]Value, len(t))
		for k, item := range t {
			conv, err := FromNative(item)
			if err != nil {
				return Value{}, err
			}
			members[k] = conv
		}
		return Object(members), nil
	}
	return Value{}, fmt.Errorf("unsupported type %T", x)
}

// Equal reports structural equality. Numbers compare by literal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case NullValue:
		return true
	case BoolValue:
		return v.b == o.b
	case NumberValue:
		return v.num == o.num
	case StringValue:
		return v.str == o.str
	case ArrayValue:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	case ObjectValue:
		if len(v.obj) != len(o.obj) {
			return false
		}
		for k, item := range v.obj {
			other, ok := o.obj[k]
			if !ok || !item.Equal(other) {
				return false
			}
		}
		return true
	}
	return false
}

// MarshalJSON implements json.Marshaler
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case BoolValue:
		return json.Marshal(v.b)
	case NumberValue:
		return []byte(v.num.String()), nil
	case StringValue:
		return json.Marshal(v.str)
	case ArrayValue:
		return json.Marshal(v.arr)
	case ObjectValue:
		return json.Marshal(v.obj)
	}
	return []byte("null"), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (v *Value) UnmarshalJSON(data []byte) error {
	decoded, err := decode(data)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}
