// Package render builds the placeholder-resolution context and substitutes
// ${dotted.path} placeholders in template text.
//
// The context is modeled uniformly as a tagged Value (null, scalar, mapping,
// sequence) with a single recursive lookup, so dotted-path traversal does not
// branch on the native shape of the data it came from.
package render

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the shape of a Value.
type Kind int

// Value kinds.
const (
	KindNull Kind = iota
	KindScalar
	KindMapping
	KindSequence
)

// Value is a tagged representation of context data.
type Value struct {
	kind     Kind
	scalar   any
	mapping  map[string]Value
	sequence []Value
}

// Null returns the null Value.
func Null() Value {
	return Value{kind: KindNull}
}

// Scalar wraps a scalar (string, bool, or number) as a Value.
func Scalar(v any) Value {
	return Value{kind: KindScalar, scalar: v}
}

// Mapping wraps a map of Values as a mapping Value.
func Mapping(m map[string]Value) Value {
	return Value{kind: KindMapping, mapping: m}
}

// Sequence wraps a slice of Values as a sequence Value.
func Sequence(s []Value) Value {
	return Value{kind: KindSequence, sequence: s}
}

// FromAny converts arbitrary decoded data (as produced by encoding/json or
// yaml.v3) into a Value.
func FromAny(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null()
	case map[string]any:
		m := make(map[string]Value, len(t))
		for k, e := range t {
			m[k] = FromAny(e)
		}
		return Mapping(m)
	case map[any]any:
		// Older YAML decoders produce interface-keyed maps
		m := make(map[string]Value, len(t))
		for k, e := range t {
			m[fmt.Sprintf("%v", k)] = FromAny(e)
		}
		return Mapping(m)
	case []any:
		s := make([]Value, 0, len(t))
		for _, e := range t {
			s = append(s, FromAny(e))
		}
		return Sequence(s)
	case []string:
		s := make([]Value, 0, len(t))
		for _, e := range t {
			s = append(s, Scalar(e))
		}
		return Sequence(s)
	default:
		return Scalar(v)
	}
}

// Kind returns the Value's kind.
func (v Value) Kind() Kind {
	return v.kind
}

// Get returns the mapping entry for key. The second result is false if the
// Value is not a mapping or the key is absent.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMapping {
		return Value{}, false
	}
	e, ok := v.mapping[key]
	return e, ok
}

// Lookup descends through mapping segments of a dotted path. Any missing
// segment yields false.
func (v Value) Lookup(dotted string) (Value, bool) {
	current := v
	for _, segment := range strings.Split(dotted, ".") {
		next, ok := current.Get(segment)
		if !ok {
			return Value{}, false
		}
		current = next
	}
	return current, true
}

// Render returns the textual form of the Value: scalars as their plain text
// form, composites as compact JSON, null as "null".
func (v Value) Render() (string, error) {
	switch v.kind {
	case KindNull:
		return "null", nil
	case KindScalar:
		switch s := v.scalar.(type) {
		case string:
			return s, nil
		case bool:
			return strconv.FormatBool(s), nil
		case float64:
			return strconv.FormatFloat(s, 'f', -1, 64), nil
		case int:
			return strconv.Itoa(s), nil
		case int64:
			return strconv.FormatInt(s, 10), nil
		default:
			return fmt.Sprintf("%v", s), nil
		}
	default:
		data, err := json.Marshal(v.toAny())
		if err != nil {
			return "", fmt.Errorf("failed to serialize composite value: %w", err)
		}
		return string(data), nil
	}
}

// toAny converts the Value back to plain Go data for serialization.
func (v Value) toAny() any {
	switch v.kind {
	case KindNull:
		return nil
	case KindScalar:
		return v.scalar
	case KindMapping:
		m := make(map[string]any, len(v.mapping))
		for k, e := range v.mapping {
			m[k] = e.toAny()
		}
		return m
	default:
		s := make([]any, 0, len(v.sequence))
		for _, e := range v.sequence {
			s = append(s, e.toAny())
		}
		return s
	}
}
