package libclang

import (
	"strconv"

	"github.com/go-clang/clang-v13/clang"
	"go.trai.ch/hdrgen/internal/core/domain"
)

// cursor implements ports.Cursor. It is only valid inside a Walk callback;
// everything it returns is a copy.
type cursor struct {
	c clang.Cursor
}

func (c cursor) Entity() domain.Entity {
	return domain.Entity{
		Kind:     entityKind(c.c.Kind()),
		Name:     c.c.Spelling(),
		Location: location(c.c),
	}
}

func (c cursor) Declaration() domain.Declaration {
	return snapshot(c.c)
}

// snapshot copies a cursor and its translated children.
func snapshot(c clang.Cursor) domain.Declaration {
	kind := entityKind(c.Kind())
	decl := domain.Declaration{
		Kind:     kind,
		Name:     c.Spelling(),
		Location: location(c),
	}

	switch kind {
	case domain.KindTypedef:
		decl.Type = c.TypedefDeclUnderlyingType().Spelling()
	case domain.KindEnum:
		decl.Type = c.EnumDeclIntegerType().Spelling()
	case domain.KindEnumConstant:
		decl.Value = strconv.FormatInt(c.EnumConstantDeclValue(), 10)
	case domain.KindFunction:
		decl.Type = c.Type().Spelling()
		decl.Result = c.ResultType().Spelling()
		decl.Variadic = c.IsVariadic()
	case domain.KindObjCInstanceMethod, domain.KindObjCClassMethod:
		decl.Result = c.ResultType().Spelling()
		decl.Variadic = c.IsVariadic()
	case domain.KindObjCProperty, domain.KindField, domain.KindParam, domain.KindVar:
		decl.Type = c.Type().Spelling()
	}

	// Preprocessing entities have no children worth copying.
	if kind == domain.KindInclusionDirective || kind == domain.KindMacroDefinition || kind == domain.KindMacroExpansion {
		return decl
	}

	c.Visit(func(child, _ clang.Cursor) clang.ChildVisitResult {
		if entityKind(child.Kind()) != domain.KindOther {
			decl.Children = append(decl.Children, snapshot(child))
		}
		return clang.ChildVisit_Continue
	})

	return decl
}

func location(c clang.Cursor) domain.Location {
	file, line, column, _ := c.Location().FileLocation()
	if file == (clang.File{}) {
		return domain.Location{}
	}
	return domain.Location{File: file.Name(), Line: line, Column: column}
}
