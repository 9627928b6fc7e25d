package types

import "fmt"

// enumString renders a known enum value by its XDR name and an unknown one
// as TypeName(value).
func enumString[E ~int32](names map[E]string, v E, typeName string) string {
	if s, ok := names[v]; ok {
		return s
	}
	return fmt.Sprintf("%s(%d)", typeName, int32(v))
}
