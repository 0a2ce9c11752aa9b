package validator

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/hdrgen/internal/core/domain"
)

const (
	fieldSep  = "\x1f"
	recordSep = "\x1e"
)

// Digest returns a 64-bit hash over the structural content of a library.
// Diagnostic origins are not hashed, so equal libraries have equal digests.
func Digest(lib *domain.Library) uint64 {
	d := xxhash.New()
	for _, name := range lib.FileNames() {
		_, _ = d.WriteString(name)
		_, _ = d.WriteString(recordSep)
		for _, stmt := range lib.Files[name].Statements {
			writeStatement(d, stmt)
		}
		_, _ = d.WriteString(recordSep)
	}
	return d.Sum64()
}

func writeStatement(d *xxhash.Digest, stmt domain.Statement) {
	writeFields(d,
		string(stmt.Kind),
		stmt.Name,
		stmt.Superclass,
		stmt.Type,
		strconv.FormatBool(stmt.Variadic),
		strconv.Itoa(len(stmt.Protocols)),
	)
	writeFields(d, stmt.Protocols...)

	_, _ = d.WriteString(strconv.Itoa(len(stmt.Members)))
	for _, m := range stmt.Members {
		writeFields(d, string(m.Kind), m.Name, m.Type, m.Value, strconv.FormatBool(m.Unsafe))
	}
	_, _ = d.WriteString(recordSep)
}

func writeFields(d *xxhash.Digest, fields ...string) {
	for _, f := range fields {
		_, _ = d.WriteString(f)
		_, _ = d.WriteString(fieldSep)
	}
}
