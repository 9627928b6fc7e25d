package output

import (
	"bytes"
	"encoding"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	"gopkg.in/yaml.v3"
)

// Field is a named node of a display tree.
type Field struct {
	Name  string
	Value any
}

// Fields is an ordered mapping; JSON and YAML output keep declaration order.
type Fields []Field

// MarshalJSON implements json.Marshaler.
func (f Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(field.Name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(field.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field.Name, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML implements yaml.Marshaler.
func (f Fields) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, field := range f {
		var v yaml.Node
		if err := v.Encode(field.Value); err != nil {
			return nil, fmt.Errorf("%s: %w", field.Name, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: field.Name},
			&v,
		)
	}
	return node, nil
}

// Tree converts v into a display tree built from Fields, []any and scalars.
//
// Nil pointers are dropped from structs, which hides the unselected arms of
// a union. Values implementing encoding.TextMarshaler render as their text,
// named integers with a String method render by name, and byte slices and
// byte arrays render as lowercase hex.
func Tree(v any) any {
	if v == nil {
		return nil
	}
	return tree(reflect.ValueOf(v))
}

func tree(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}
	if v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		if s, ok := asText(v); ok {
			return s
		}
		return tree(v.Elem())
	}
	if s, ok := asText(v); ok {
		return s
	}

	switch v.Kind() {
	case reflect.Struct:
		return structTree(v)
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return hex.EncodeToString(v.Bytes())
		}
		return listTree(v)
	case reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			b := make([]byte, v.Len())
			reflect.Copy(reflect.ValueOf(b), v)
			return hex.EncodeToString(b)
		}
		return listTree(v)
	case reflect.Map:
		return mapTree(v)
	case reflect.Bool:
		return v.Bool()
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if s, ok := asStringer(v); ok {
			return s
		}
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if s, ok := asStringer(v); ok {
			return s
		}
		return v.Uint()
	case reflect.Float32, reflect.Float64:
		return v.Float()
	}
	if v.CanInterface() {
		return fmt.Sprint(v.Interface())
	}
	return nil
}

func structTree(v reflect.Value) Fields {
	t := v.Type()
	out := make(Fields, 0, t.NumField())
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		fv := v.Field(i)
		if (fv.Kind() == reflect.Pointer || fv.Kind() == reflect.Interface) && fv.IsNil() {
			continue
		}
		out = append(out, Field{Name: sf.Name, Value: tree(fv)})
	}
	return out
}

func listTree(v reflect.Value) []any {
	out := make([]any, v.Len())
	for i := range out {
		out[i] = tree(v.Index(i))
	}
	return out
}

func mapTree(v reflect.Value) Fields {
	out := make(Fields, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		out = append(out, Field{Name: fmt.Sprint(iter.Key().Interface()), Value: tree(iter.Value())})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func asText(v reflect.Value) (string, bool) {
	if !v.CanInterface() {
		return "", false
	}
	m, ok := v.Interface().(encoding.TextMarshaler)
	if !ok {
		return "", false
	}
	b, err := m.MarshalText()
	if err != nil {
		return "", false
	}
	return string(b), true
}

func asStringer(v reflect.Value) (string, bool) {
	if !v.CanInterface() {
		return "", false
	}
	s, ok := v.Interface().(fmt.Stringer)
	if !ok {
		return "", false
	}
	return s.String(), true
}
