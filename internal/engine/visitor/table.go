package visitor

import "go.trai.ch/hdrgen/internal/core/domain"

// EntityClass groups entity kinds by how the engine routes them.
type EntityClass uint8

const (
	// ClassInclusion is an inclusion directive.
	ClassInclusion EntityClass = iota
	// ClassMacro is a macro definition or expansion.
	ClassMacro
	// ClassDeclaration is everything else.
	ClassDeclaration
)

func (c EntityClass) String() string {
	switch c {
	case ClassInclusion:
		return "inclusion"
	case ClassMacro:
		return "macro"
	default:
		return "declaration"
	}
}

// Phase is the state of one traversal. The only transition is
// PhasePreprocessing to PhaseDeclarations.
type Phase uint8

const (
	// PhasePreprocessing is the initial phase, in which inclusions register files.
	PhasePreprocessing Phase = iota
	// PhaseDeclarations is entered by the first entity that produces content.
	PhaseDeclarations
)

func (p Phase) String() string {
	if p == PhasePreprocessing {
		return "preprocessing"
	}
	return "declarations"
}

// Action is what the engine does with one entity.
type Action uint8

const (
	// ActionIgnore drops the entity.
	ActionIgnore Action = iota
	// ActionRegisterFile creates the file named by an inclusion directive.
	ActionRegisterFile
	// ActionAppend enters PhaseDeclarations and appends the entity's statements.
	ActionAppend
)

func (a Action) String() string {
	switch a {
	case ActionRegisterFile:
		return "register-file"
	case ActionAppend:
		return "append"
	default:
		return "ignore"
	}
}

var decisions = [...][2]Action{
	ClassInclusion:   {PhasePreprocessing: ActionRegisterFile, PhaseDeclarations: ActionAppend},
	ClassMacro:       {PhasePreprocessing: ActionIgnore, PhaseDeclarations: ActionAppend},
	ClassDeclaration: {PhasePreprocessing: ActionAppend, PhaseDeclarations: ActionAppend},
}

// Decide returns the action for an entity of the given class seen in the given phase.
func Decide(class EntityClass, phase Phase) Action {
	return decisions[class][phase]
}

// Classify maps an entity kind to its routing class.
func Classify(kind domain.EntityKind) EntityClass {
	switch kind {
	case domain.KindInclusionDirective:
		return ClassInclusion
	case domain.KindMacroDefinition, domain.KindMacroExpansion:
		return ClassMacro
	default:
		return ClassDeclaration
	}
}
