package visitor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/hdrgen/internal/core/domain"
	"go.trai.ch/hdrgen/internal/engine/visitor"
)

func TestDecide_Exhaustive(t *testing.T) {
	t.Parallel()

	want := map[visitor.EntityClass]map[visitor.Phase]visitor.Action{
		visitor.ClassInclusion: {
			visitor.PhasePreprocessing: visitor.ActionRegisterFile,
			visitor.PhaseDeclarations:  visitor.ActionAppend,
		},
		visitor.ClassMacro: {
			visitor.PhasePreprocessing: visitor.ActionIgnore,
			visitor.PhaseDeclarations:  visitor.ActionAppend,
		},
		visitor.ClassDeclaration: {
			visitor.PhasePreprocessing: visitor.ActionAppend,
			visitor.PhaseDeclarations:  visitor.ActionAppend,
		},
	}

	for class, phases := range want {
		for phase, action := range phases {
			assert.Equal(t, action, visitor.Decide(class, phase), "%s in %s", class, phase)
		}
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, visitor.ClassInclusion, visitor.Classify(domain.KindInclusionDirective))
	assert.Equal(t, visitor.ClassMacro, visitor.Classify(domain.KindMacroDefinition))
	assert.Equal(t, visitor.ClassMacro, visitor.Classify(domain.KindMacroExpansion))

	for _, kind := range []domain.EntityKind{
		domain.KindOther,
		domain.KindObjCInterface,
		domain.KindEnum,
		domain.KindFunction,
		domain.KindTypedef,
	} {
		assert.Equal(t, visitor.ClassDeclaration, visitor.Classify(kind), kind.String())
	}
}

func TestStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "preprocessing", visitor.PhasePreprocessing.String())
	assert.Equal(t, "declarations", visitor.PhaseDeclarations.String())
	assert.Equal(t, "register-file", visitor.ActionRegisterFile.String())
	assert.Equal(t, "macro", visitor.ClassMacro.String())
}
