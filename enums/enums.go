// Package enums holds the integer-backed enumerations of the Bungie.net API.
//
// Every type is a plain named integer so that values the library does not
// know about survive a round trip unchanged. IsKnown reports whether a value
// is one of the documented constants, and String falls back to the raw
// integer for unknown values.
package enums

import (
	"fmt"
	"strconv"
	"strings"
)

func nameOf[E ~int](typeName string, names map[E]string, v E) string {
	if n, ok := names[v]; ok {
		return n
	}
	return fmt.Sprintf("%s(%d)", typeName, int(v))
}

func flagsOf[E ~int](typeName string, names map[E]string, v E) string {
	if n, ok := names[v]; ok {
		return n
	}
	var parts []string
	rest := v
	for bit := E(1); bit > 0 && bit <= v; bit <<= 1 {
		if v&bit == 0 {
			continue
		}
		if n, ok := names[bit]; ok {
			parts = append(parts, n)
			rest &^= bit
		}
	}
	if rest != 0 {
		parts = append(parts, strconv.Itoa(int(rest)))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%s(%d)", typeName, int(v))
	}
	return strings.Join(parts, "|")
}

// JoinComponents renders components the way the components query parameter
// expects them.
func JoinComponents(components []ComponentType) string {
	parts := make([]string, 0, len(components))
	for _, c := range components {
		parts = append(parts, strconv.Itoa(int(c)))
	}
	return strings.Join(parts, ",")
}
