package domain

import "fmt"

// EntityKind classifies an AST entity independently of the parser library.
type EntityKind uint8

const (
	// KindOther is any entity the translator has no dedicated handling for.
	KindOther EntityKind = iota
	// KindInclusionDirective is an #include or #import directive.
	KindInclusionDirective
	// KindMacroDefinition is a #define.
	KindMacroDefinition
	// KindMacroExpansion is the use of a macro.
	KindMacroExpansion
	// KindObjCInterface is an @interface declaration.
	KindObjCInterface
	// KindObjCCategory is an @interface Class (Category) declaration.
	KindObjCCategory
	// KindObjCProtocol is an @protocol declaration.
	KindObjCProtocol
	// KindObjCInstanceMethod is an instance method declaration.
	KindObjCInstanceMethod
	// KindObjCClassMethod is a class method declaration.
	KindObjCClassMethod
	// KindObjCProperty is an @property declaration.
	KindObjCProperty
	// KindObjCSuperClassRef references the superclass of an interface.
	KindObjCSuperClassRef
	// KindObjCProtocolRef references an adopted protocol.
	KindObjCProtocolRef
	// KindObjCClassRef references the class a category extends.
	KindObjCClassRef
	// KindEnum is an enum declaration.
	KindEnum
	// KindEnumConstant is one enumerator.
	KindEnumConstant
	// KindStruct is a struct declaration.
	KindStruct
	// KindField is a struct field.
	KindField
	// KindTypedef is a typedef declaration.
	KindTypedef
	// KindFunction is a function declaration.
	KindFunction
	// KindParam is a function or method parameter.
	KindParam
	// KindVar is a global variable declaration.
	KindVar
)

var kindNames = [...]string{
	KindOther:              "Other",
	KindInclusionDirective: "InclusionDirective",
	KindMacroDefinition:    "MacroDefinition",
	KindMacroExpansion:     "MacroExpansion",
	KindObjCInterface:      "ObjCInterface",
	KindObjCCategory:       "ObjCCategory",
	KindObjCProtocol:       "ObjCProtocol",
	KindObjCInstanceMethod: "ObjCInstanceMethod",
	KindObjCClassMethod:    "ObjCClassMethod",
	KindObjCProperty:       "ObjCProperty",
	KindObjCSuperClassRef:  "ObjCSuperClassRef",
	KindObjCProtocolRef:    "ObjCProtocolRef",
	KindObjCClassRef:       "ObjCClassRef",
	KindEnum:               "Enum",
	KindEnumConstant:       "EnumConstant",
	KindStruct:             "Struct",
	KindField:              "Field",
	KindTypedef:            "Typedef",
	KindFunction:           "Function",
	KindParam:              "Param",
	KindVar:                "Var",
}

// String implements fmt.Stringer.
func (k EntityKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("EntityKind(%d)", k)
}

// Location is a resolved source position.
type Location struct {
	File   string
	Line   uint32
	Column uint32
}

// String implements fmt.Stringer.
func (l Location) String() string {
	if l.File == "" {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Entity is a copy of the routing-relevant part of one top-level AST entity.
type Entity struct {
	Kind     EntityKind
	Name     string
	Location Location
}

// Declaration is a copy of one AST entity and its children, detached from the parser.
type Declaration struct {
	Kind     EntityKind
	Name     string
	Type     string
	Result   string
	Value    string
	Variadic bool
	Location Location
	Children []Declaration
}

// ChildrenOf returns the direct children of the given kind, in order.
func (d *Declaration) ChildrenOf(kind EntityKind) []Declaration {
	var out []Declaration
	for _, c := range d.Children {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// FileIdentity names the framework and header an entity was declared in.
type FileIdentity struct {
	Library string
	File    string
}
