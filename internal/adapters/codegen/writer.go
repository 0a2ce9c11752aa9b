// Package codegen writes the translated model of a framework as Go sources.
package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/hdrgen/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// FrameworkFileName holds the package clause, the imports list and the descriptor types.
	FrameworkFileName = "framework.go"

	header = "// Code generated by hdrgen. DO NOT EDIT.\n\n"
)

// Writer implements ports.OutputWriter.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write replaces dir with one source per header of lib plus the framework file.
func (w *Writer) Write(dir, name string, lib *domain.Library, cfg *domain.Config) error {
	files, err := Render(name, lib, cfg)
	if err != nil {
		return err
	}

	if err := os.RemoveAll(dir); err != nil {
		return writeError("cannot clear output directory", dir, err)
	}
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return writeError("cannot create output directory", dir, err)
	}

	for file, src := range files {
		path := filepath.Join(dir, file)
		if err := os.WriteFile(path, src, domain.FilePerm); err != nil {
			return writeError("cannot write generated source", path, err)
		}
	}

	return nil
}

// Render returns the generated sources of one framework keyed by file name.
// Type names declared more than once in a framework are emitted only at
// their first occurrence in sorted file order.
func Render(name string, lib *domain.Library, cfg *domain.Config) (map[string][]byte, error) {
	if cfg == nil {
		cfg = &domain.Config{}
	}

	pkg := packageName(name)
	files := map[string][]byte{
		FrameworkFileName: renderFramework(pkg, name, cfg.Imports),
	}

	g := &generator{pkg: pkg, declared: make(map[string]bool)}
	for _, stem := range lib.FileNames() {
		file := stem + ".go"
		if strings.EqualFold(file, FrameworkFileName) || strings.HasSuffix(stem, "_test") {
			err := zerr.With(zerr.Wrap(domain.ErrOutputWriteFailed, "header name collides with a reserved file name"), "framework", name)
			return nil, zerr.With(err, "file", stem)
		}
		files[file] = g.file(lib.Files[stem])
	}

	return files, nil
}

func renderFramework(pkg, name string, imports []string) []byte {
	var buf bytes.Buffer
	buf.WriteString(header)
	fmt.Fprintf(&buf, "// Package %s holds the declarations of the %s framework.\n", pkg, name)
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	fmt.Fprintf(&buf, "// Framework is the name of the translated framework.\n")
	fmt.Fprintf(&buf, "const Framework = %q\n\n", name)

	fmt.Fprintf(&buf, "// Imports lists the frameworks %s depends on.\n", name)
	if len(imports) == 0 {
		buf.WriteString("var Imports []string\n\n")
	} else {
		buf.WriteString("var Imports = []string{\n")
		for _, imp := range imports {
			fmt.Fprintf(&buf, "\t%q,\n", imp)
		}
		buf.WriteString("}\n\n")
	}

	buf.WriteString(descriptors)
	return buf.Bytes()
}

const descriptors = `// Selector describes one method or property of an Objective-C container.
type Selector struct {
	Name   string
	Kind   string
	Result string
	Unsafe bool
}

// Container describes an Objective-C class, category or protocol.
type Container struct {
	Kind       string
	Name       string
	Superclass string
	Protocols  []string
	Selectors  []Selector
}

// Param is one function parameter.
type Param struct {
	Name string
	Type string
}

// Function describes a C function symbol.
type Function struct {
	Name     string
	Result   string
	Params   []Param
	Variadic bool
}

// Static describes a global variable symbol.
type Static struct {
	Name string
	Type string
}
`

type generator struct {
	pkg      string
	declared map[string]bool
}

func (g *generator) file(f *domain.File) []byte {
	var buf bytes.Buffer
	buf.WriteString(header)
	fmt.Fprintf(&buf, "package %s\n", g.pkg)

	for _, stmt := range f.Statements {
		switch stmt.Kind {
		case domain.StmtEnum:
			g.enum(&buf, stmt)
		case domain.StmtStruct:
			g.record(&buf, stmt)
		case domain.StmtTypedef:
			g.alias(&buf, stmt)
		case domain.StmtClass, domain.StmtCategory, domain.StmtProtocol:
			g.container(&buf, stmt)
		case domain.StmtFn:
			g.function(&buf, stmt)
		case domain.StmtStatic:
			g.static(&buf, stmt)
		}
	}

	return buf.Bytes()
}

// claim reserves a Go identifier and reports whether it was still free.
func (g *generator) claim(ident string) bool {
	if ident == "" || g.declared[ident] {
		return false
	}
	g.declared[ident] = true
	return true
}

func (g *generator) enum(buf *bytes.Buffer, stmt domain.Statement) {
	typ := ""
	if named(stmt.Name) && g.claim(exportName(stmt.Name)) {
		typ = exportName(stmt.Name)
		fmt.Fprintf(buf, "\ntype %s %s\n", typ, orInt(goType(stmt.Type)))
	}

	var consts []domain.Member
	for _, m := range stmt.Members {
		if g.claim(exportName(m.Name)) {
			consts = append(consts, m)
		}
	}
	if len(consts) == 0 {
		return
	}

	buf.WriteString("\nconst (\n")
	for _, m := range consts {
		if typ == "" {
			fmt.Fprintf(buf, "\t%s = %s\n", exportName(m.Name), m.Value)
			continue
		}
		fmt.Fprintf(buf, "\t%s %s = %s\n", exportName(m.Name), typ, m.Value)
	}
	buf.WriteString(")\n")
}

func (g *generator) record(buf *bytes.Buffer, stmt domain.Statement) {
	if !named(stmt.Name) || !g.claim(exportName(stmt.Name)) {
		return
	}

	if len(stmt.Members) == 0 {
		fmt.Fprintf(buf, "\ntype %s struct{}\n", exportName(stmt.Name))
		return
	}

	fmt.Fprintf(buf, "\ntype %s struct {\n", exportName(stmt.Name))
	for _, m := range stmt.Members {
		fmt.Fprintf(buf, "\t%s %s\n", exportName(m.Name), orPointer(goType(m.Type)))
	}
	buf.WriteString("}\n")
}

func (g *generator) alias(buf *bytes.Buffer, stmt domain.Statement) {
	name := exportName(stmt.Name)
	target := orPointer(goType(stmt.Type))
	if target == name || !g.claim(name) {
		return
	}
	fmt.Fprintf(buf, "\ntype %s = %s\n", name, target)
}

func (g *generator) container(buf *bytes.Buffer, stmt domain.Statement) {
	var ident string
	switch stmt.Kind {
	case domain.StmtClass:
		if g.claim(exportName(stmt.Name)) {
			fmt.Fprintf(buf, "\n// %s is a handle to an instance of the %s class.\n", exportName(stmt.Name), stmt.Name)
			fmt.Fprintf(buf, "type %s struct {\n\tid uintptr\n}\n", exportName(stmt.Name))
		}
		ident = exportName(stmt.Name) + "Class"
	case domain.StmtCategory:
		ident = exportName(stmt.Superclass) + exportName(stmt.Name) + "Category"
	case domain.StmtProtocol:
		ident = exportName(stmt.Name) + "Protocol"
	}
	if !g.claim(ident) {
		return
	}

	fmt.Fprintf(buf, "\nvar %s = Container{\n", ident)
	fmt.Fprintf(buf, "\tKind: %q,\n", string(stmt.Kind))
	fmt.Fprintf(buf, "\tName: %q,\n", stmt.Name)
	if stmt.Superclass != "" {
		fmt.Fprintf(buf, "\tSuperclass: %q,\n", stmt.Superclass)
	}
	if len(stmt.Protocols) > 0 {
		buf.WriteString("\tProtocols: []string{")
		for i, p := range stmt.Protocols {
			if i > 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(buf, "%q", p)
		}
		buf.WriteString("},\n")
	}
	if len(stmt.Members) > 0 {
		buf.WriteString("\tSelectors: []Selector{\n")
		for _, m := range stmt.Members {
			fmt.Fprintf(buf, "\t\t{Name: %q, Kind: %q, Result: %q, Unsafe: %t},\n", m.Name, string(m.Kind), m.Type, m.Unsafe)
		}
		buf.WriteString("\t},\n")
	}
	buf.WriteString("}\n")
}

func (g *generator) function(buf *bytes.Buffer, stmt domain.Statement) {
	ident := exportName(stmt.Name) + "Func"
	if !g.claim(ident) {
		return
	}

	fmt.Fprintf(buf, "\nvar %s = Function{\n", ident)
	fmt.Fprintf(buf, "\tName: %q,\n", stmt.Name)
	fmt.Fprintf(buf, "\tResult: %q,\n", stmt.Type)
	if len(stmt.Members) > 0 {
		buf.WriteString("\tParams: []Param{\n")
		for _, m := range stmt.Members {
			fmt.Fprintf(buf, "\t\t{Name: %q, Type: %q},\n", m.Name, m.Type)
		}
		buf.WriteString("\t},\n")
	}
	if stmt.Variadic {
		buf.WriteString("\tVariadic: true,\n")
	}
	buf.WriteString("}\n")
}

func (g *generator) static(buf *bytes.Buffer, stmt domain.Statement) {
	ident := exportName(stmt.Name) + "Var"
	if !g.claim(ident) {
		return
	}
	fmt.Fprintf(buf, "\nvar %s = Static{Name: %q, Type: %q}\n", ident, stmt.Name, stmt.Type)
}

func orInt(t string) string {
	if t == "" {
		return "int32"
	}
	return t
}

func orPointer(t string) string {
	if t == "" {
		return "uintptr"
	}
	return t
}

func writeError(msg, path string, cause error) error {
	return zerr.With(zerr.Wrap(errors.Join(domain.ErrOutputWriteFailed, cause), msg), "path", path)
}
