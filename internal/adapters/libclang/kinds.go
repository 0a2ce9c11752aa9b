package libclang

import (
	"github.com/go-clang/clang-v13/clang"
	"go.trai.ch/hdrgen/internal/core/domain"
)

var kinds = map[clang.CursorKind]domain.EntityKind{
	clang.Cursor_InclusionDirective:     domain.KindInclusionDirective,
	clang.Cursor_MacroDefinition:        domain.KindMacroDefinition,
	clang.Cursor_MacroExpansion:         domain.KindMacroExpansion,
	clang.Cursor_ObjCInterfaceDecl:      domain.KindObjCInterface,
	clang.Cursor_ObjCCategoryDecl:       domain.KindObjCCategory,
	clang.Cursor_ObjCProtocolDecl:       domain.KindObjCProtocol,
	clang.Cursor_ObjCInstanceMethodDecl: domain.KindObjCInstanceMethod,
	clang.Cursor_ObjCClassMethodDecl:    domain.KindObjCClassMethod,
	clang.Cursor_ObjCPropertyDecl:       domain.KindObjCProperty,
	clang.Cursor_ObjCSuperClassRef:      domain.KindObjCSuperClassRef,
	clang.Cursor_ObjCProtocolRef:        domain.KindObjCProtocolRef,
	clang.Cursor_ObjCClassRef:           domain.KindObjCClassRef,
	clang.Cursor_EnumDecl:               domain.KindEnum,
	clang.Cursor_EnumConstantDecl:       domain.KindEnumConstant,
	clang.Cursor_StructDecl:             domain.KindStruct,
	clang.Cursor_FieldDecl:              domain.KindField,
	clang.Cursor_TypedefDecl:            domain.KindTypedef,
	clang.Cursor_FunctionDecl:           domain.KindFunction,
	clang.Cursor_ParmDecl:               domain.KindParam,
	clang.Cursor_VarDecl:                domain.KindVar,
}

// entityKind maps a libclang cursor kind. Unmapped kinds are domain.KindOther.
func entityKind(k clang.CursorKind) domain.EntityKind {
	if kind, ok := kinds[k]; ok {
		return kind
	}
	return domain.KindOther
}
