// Package theme resolves dotted color token paths such as "redAccent.500"
// against a palette loaded from disk, and maps access levels onto colors and
// icons.
//
// A palette is a nested map keyed by segment. Resolution never fails: when a
// segment is missing, or there is no palette at all, the path's entry in a
// fixed fallback table is used, and unknown paths fall back to DefaultColor.
package theme

import "strings"

// DefaultColor is returned for paths with no fallback entry and for empty
// palette values.
const DefaultColor = "#757575"

// Tokens is a nested palette mapping, e.g. {"redAccent": {"500": "#db4f4a"}}.
type Tokens map[string]any

var fallbacks = map[string]string{
	"blueAccent.500":   "#1976d2",
	"redAccent.500":    "#d32f2f",
	"greenAccent.500":  "#2e7d32",
	"yellowAccent.500": "#ed6c02",
	"primary.400":      "#f5f5f5",
	"grey.100":         "#f5f5f5",
}

// Source tells where a resolved color came from
type Source int

const (
	SourceTheme Source = iota
	SourceFallback
)

func (s Source) String() string {
	if s == SourceFallback {
		return "fallback"
	}
	return "theme"
}

// Resolution is a resolved color tagged with its source
type Resolution struct {
	Color  string
	Source Source
}

// Fallback returns the fixed color for path, or DefaultColor
func Fallback(path string) string {
	if c, ok := fallbacks[path]; ok {
		return c
	}
	return DefaultColor
}

// Lookup walks tokens one path segment at a time. It reports false when a
// segment is missing or an intermediate value is nil or not a map. A key
// that is present with a nil value at the last segment is found.
func Lookup(tokens Tokens, path string) (any, bool) {
	var cur any = map[string]any(tokens)
	for _, seg := range strings.Split(path, ".") {
		m, ok := asMap(cur)
		if !ok {
			return nil, false
		}
		next, ok := m[seg]
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// ResolveTagged resolves path against tokens and reports the source
func ResolveTagged(path string, tokens Tokens) Resolution {
	v, ok := Lookup(tokens, path)
	if !ok {
		return Resolution{Color: Fallback(path), Source: SourceFallback}
	}
	// Present but nil, empty or not a string
	s, _ := v.(string)
	if s == "" {
		return Resolution{Color: DefaultColor, Source: SourceFallback}
	}
	return Resolution{Color: s, Source: SourceTheme}
}

// Resolve resolves path against tokens, which may be nil
func Resolve(path string, tokens Tokens) string {
	return ResolveTagged(path, tokens).Color
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, m != nil
	case Tokens:
		return m, m != nil
	}
	return nil, false
}
