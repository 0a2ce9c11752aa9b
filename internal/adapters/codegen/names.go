package codegen

import (
	"strings"
	"unicode"
)

// packageName derives a Go package name from a framework name, e.g. "AVFoundation" -> "avfoundation".
func packageName(framework string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(framework) {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	name := b.String()
	if name == "" || unicode.IsDigit(rune(name[0])) {
		name = "fw" + name
	}
	return name
}

// exportName returns an exported Go identifier for a C name. Leading
// underscores are dropped and selector colons become underscores.
func exportName(name string) string {
	name = strings.TrimLeft(name, "_")
	if name == "" {
		return ""
	}

	var b strings.Builder
	for i, r := range name {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case r == ':':
			b.WriteByte('_')
		case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		}
	}
	return strings.TrimRight(b.String(), "_")
}

// named reports whether name is usable as a declaration name. Anonymous
// records and enums are spelled with a description such as "(unnamed at x.h:1:1)".
func named(name string) bool {
	return name != "" && !strings.ContainsAny(name, " ()")
}

var builtinTypes = map[string]string{
	"void":               "",
	"_Bool":              "bool",
	"bool":               "bool",
	"BOOL":               "bool",
	"char":               "int8",
	"signed char":        "int8",
	"unsigned char":      "uint8",
	"short":              "int16",
	"unsigned short":     "uint16",
	"int":                "int32",
	"unsigned int":       "uint32",
	"long":               "int64",
	"unsigned long":      "uint64",
	"long long":          "int64",
	"unsigned long long": "uint64",
	"NSInteger":          "int64",
	"NSUInteger":         "uint64",
	"float":              "float32",
	"double":             "float64",
	"CGFloat":            "float64",
	"int8_t":             "int8",
	"int16_t":            "int16",
	"int32_t":            "int32",
	"int64_t":            "int64",
	"uint8_t":            "uint8",
	"uint16_t":           "uint16",
	"uint32_t":           "uint32",
	"uint64_t":           "uint64",
	"size_t":             "uint64",
}

var qualifiers = []string{"const ", "volatile ", "struct ", "enum ", "union "}

// goType maps a C type spelling to a Go type. Pointers and blocks become
// uintptr; other named types are referenced by their exported name.
func goType(c string) string {
	c = strings.TrimSpace(c)
	if strings.ContainsAny(c, "*^[(") {
		return "uintptr"
	}
	for _, q := range qualifiers {
		c = strings.TrimPrefix(c, q)
	}
	if t, ok := builtinTypes[c]; ok {
		return t
	}
	if !named(c) {
		return "uintptr"
	}
	return exportName(c)
}
