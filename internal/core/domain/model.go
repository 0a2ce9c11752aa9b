package domain

import (
	"maps"
	"slices"
)

// StatementKind is the category of a translated statement.
type StatementKind string

const (
	// StmtClass is an Objective-C class.
	StmtClass StatementKind = "class"
	// StmtCategory is an Objective-C category on an existing class.
	StmtCategory StatementKind = "category"
	// StmtProtocol is an Objective-C protocol.
	StmtProtocol StatementKind = "protocol"
	// StmtEnum is an enumeration and its constants.
	StmtEnum StatementKind = "enum"
	// StmtStruct is a C struct.
	StmtStruct StatementKind = "struct"
	// StmtTypedef is a type alias.
	StmtTypedef StatementKind = "typedef"
	// StmtFn is a C function.
	StmtFn StatementKind = "fn"
	// StmtStatic is a global variable.
	StmtStatic StatementKind = "static"
)

// MemberKind is the category of a statement member.
type MemberKind string

const (
	// MemberMethod is an instance method.
	MemberMethod MemberKind = "method"
	// MemberClassMethod is a class method.
	MemberClassMethod MemberKind = "class_method"
	// MemberProperty is a property.
	MemberProperty MemberKind = "property"
	// MemberConstant is an enumerator.
	MemberConstant MemberKind = "constant"
	// MemberField is a struct field.
	MemberField MemberKind = "field"
	// MemberParam is a function parameter.
	MemberParam MemberKind = "param"
)

// Member is one part of a statement, such as a method or an enumerator.
type Member struct {
	Kind   MemberKind
	Name   string
	Type   string
	Value  string
	Unsafe bool

	// Origin is diagnostic only and does not take part in equality.
	Origin Location
}

// Equal reports whether two members are structurally identical.
func (m Member) Equal(o Member) bool {
	return m.Kind == o.Kind &&
		m.Name == o.Name &&
		m.Type == o.Type &&
		m.Value == o.Value &&
		m.Unsafe == o.Unsafe
}

// Statement is one translated unit derived from a declaration and its framework's config.
type Statement struct {
	Kind       StatementKind
	Name       string
	Superclass string
	Type       string
	Variadic   bool
	Protocols  []string
	Members    []Member

	// Origin is diagnostic only and does not take part in equality.
	Origin Location
}

// Equal reports whether two statements are structurally identical, ignoring origins.
func (s Statement) Equal(o Statement) bool {
	return s.Kind == o.Kind &&
		s.Name == o.Name &&
		s.Superclass == o.Superclass &&
		s.Type == o.Type &&
		s.Variadic == o.Variadic &&
		slices.Equal(s.Protocols, o.Protocols) &&
		slices.EqualFunc(s.Members, o.Members, Member.Equal)
}

// File is the ordered translation of one header.
type File struct {
	Statements []Statement
}

// NewFile returns an empty file.
func NewFile() *File {
	return &File{}
}

// Add appends a statement, preserving encounter order.
func (f *File) Add(stmt Statement) {
	f.Statements = append(f.Statements, stmt)
}

// Equal reports whether two files hold the same statements in the same order.
func (f *File) Equal(o *File) bool {
	return slices.EqualFunc(f.Statements, o.Statements, Statement.Equal)
}

// Library is the translation of one framework, keyed by header stem.
type Library struct {
	Files map[string]*File
}

// NewLibrary returns an empty library.
func NewLibrary() *Library {
	return &Library{Files: make(map[string]*File)}
}

// EnsureFile creates the file on first sight and reports whether it was created.
func (l *Library) EnsureFile(name string) bool {
	if _, ok := l.Files[name]; ok {
		return false
	}
	l.Files[name] = NewFile()
	return true
}

// FileNames returns the header stems in sorted order.
func (l *Library) FileNames() []string {
	return slices.Sorted(maps.Keys(l.Files))
}

// Equal reports whether two libraries hold the same files with the same content.
func (l *Library) Equal(o *Library) bool {
	return maps.EqualFunc(l.Files, o.Files, (*File).Equal)
}

// Libraries is the result of one parse, keyed by framework name.
type Libraries map[string]*Library

// NewLibraries pre-allocates an empty library for every configured framework.
func NewLibraries(configs Configs) Libraries {
	libs := make(Libraries, len(configs))
	for name := range configs {
		libs[name] = NewLibrary()
	}
	return libs
}

// Names returns the framework names in sorted order.
func (ls Libraries) Names() []string {
	return slices.Sorted(maps.Keys(ls))
}

// Equal reports whether two results are identical for every framework.
func (ls Libraries) Equal(o Libraries) bool {
	return maps.EqualFunc(ls, o, (*Library).Equal)
}
