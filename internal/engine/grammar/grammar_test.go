package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hdrgen/internal/core/domain"
	"go.trai.ch/hdrgen/internal/engine/grammar"
)

func loc(line uint32) domain.Location {
	return domain.Location{File: "/F.framework/Headers/F.h", Line: line, Column: 1}
}

func nsObject() domain.Declaration {
	return domain.Declaration{
		Kind:     domain.KindObjCInterface,
		Name:     "NSString",
		Location: loc(1),
		Children: []domain.Declaration{
			{Kind: domain.KindObjCSuperClassRef, Name: "NSObject"},
			{Kind: domain.KindObjCProtocolRef, Name: "NSCopying"},
			{Kind: domain.KindObjCProtocolRef, Name: "NSSecureCoding"},
			{Kind: domain.KindObjCInstanceMethod, Name: "length", Result: "NSUInteger", Location: loc(2)},
			{Kind: domain.KindObjCInstanceMethod, Name: "characterAtIndex:", Result: "unichar", Location: loc(3)},
			{Kind: domain.KindObjCClassMethod, Name: "string", Result: "instancetype", Location: loc(4)},
			{Kind: domain.KindObjCProperty, Name: "UTF8String", Type: "const char *", Location: loc(5)},
		},
	}
}

func TestParse_Class(t *testing.T) {
	t.Parallel()

	stmts := grammar.New().Parse(nsObject(), &domain.Config{})
	require.Len(t, stmts, 1)

	stmt := stmts[0]
	assert.Equal(t, domain.StmtClass, stmt.Kind)
	assert.Equal(t, "NSString", stmt.Name)
	assert.Equal(t, "NSObject", stmt.Superclass)
	assert.Equal(t, []string{"NSCopying", "NSSecureCoding"}, stmt.Protocols)
	assert.Equal(t, loc(1), stmt.Origin)

	require.Len(t, stmt.Members, 4)
	assert.Equal(t, domain.Member{Kind: domain.MemberMethod, Name: "length", Type: "NSUInteger", Origin: loc(2)}, stmt.Members[0])
	assert.Equal(t, domain.MemberClassMethod, stmt.Members[2].Kind)
	assert.Equal(t, domain.MemberProperty, stmt.Members[3].Kind)
	assert.Equal(t, "const char *", stmt.Members[3].Type)
}

func TestParse_ClassRules(t *testing.T) {
	t.Parallel()

	t.Run("skipped class", func(t *testing.T) {
		t.Parallel()

		cfg := &domain.Config{Classes: map[string]domain.ClassRules{"NSString": {Skipped: true}}}
		assert.Empty(t, grammar.New().Parse(nsObject(), cfg))
	})

	t.Run("skipped and unsafe methods", func(t *testing.T) {
		t.Parallel()

		cfg := &domain.Config{Classes: map[string]domain.ClassRules{
			"NSString": {Methods: map[string]domain.MethodRules{
				"length":            {Skipped: true},
				"characterAtIndex:": {Unsafe: true},
			}},
		}}

		stmts := grammar.New().Parse(nsObject(), cfg)
		require.Len(t, stmts, 1)
		require.Len(t, stmts[0].Members, 3)
		assert.Equal(t, "characterAtIndex:", stmts[0].Members[0].Name)
		assert.True(t, stmts[0].Members[0].Unsafe)
		assert.False(t, stmts[0].Members[1].Unsafe)
	})
}

func TestParse_CategoryUsesClassRules(t *testing.T) {
	t.Parallel()

	decl := domain.Declaration{
		Kind: domain.KindObjCCategory,
		Name: "NSStringExtensionMethods",
		Children: []domain.Declaration{
			{Kind: domain.KindObjCClassRef, Name: "NSString"},
			{Kind: domain.KindObjCInstanceMethod, Name: "lowercaseString", Result: "NSString *"},
			{Kind: domain.KindObjCInstanceMethod, Name: "getCString:", Result: "BOOL"},
		},
	}
	cfg := &domain.Config{Classes: map[string]domain.ClassRules{
		"NSString": {Methods: map[string]domain.MethodRules{"getCString:": {Skipped: true}}},
	}}

	stmts := grammar.New().Parse(decl, cfg)
	require.Len(t, stmts, 1)
	assert.Equal(t, domain.StmtCategory, stmts[0].Kind)
	assert.Equal(t, "NSString", stmts[0].Superclass)
	require.Len(t, stmts[0].Members, 1)
	assert.Equal(t, "lowercaseString", stmts[0].Members[0].Name)

	skipped := &domain.Config{Classes: map[string]domain.ClassRules{"NSString": {Skipped: true}}}
	assert.Empty(t, grammar.New().Parse(decl, skipped))
}

func TestParse_Protocol(t *testing.T) {
	t.Parallel()

	decl := domain.Declaration{
		Kind: domain.KindObjCProtocol,
		Name: "NSCopying",
		Children: []domain.Declaration{
			{Kind: domain.KindObjCInstanceMethod, Name: "copyWithZone:", Result: "id"},
		},
	}

	stmts := grammar.New().Parse(decl, &domain.Config{})
	require.Len(t, stmts, 1)
	assert.Equal(t, domain.StmtProtocol, stmts[0].Kind)
	assert.Len(t, stmts[0].Members, 1)

	unsafe := &domain.Config{Protocols: map[string]domain.ClassRules{
		"NSCopying": {Methods: map[string]domain.MethodRules{"copyWithZone:": {Unsafe: true}}},
	}}
	assert.True(t, grammar.New().Parse(decl, unsafe)[0].Members[0].Unsafe)

	skipped := &domain.Config{Protocols: map[string]domain.ClassRules{"NSCopying": {Skipped: true}}}
	assert.Empty(t, grammar.New().Parse(decl, skipped))
}

func TestParse_Items(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		decl domain.Declaration
		skip *domain.Config
		want domain.Statement
	}{
		{
			name: "enum",
			decl: domain.Declaration{
				Kind: domain.KindEnum,
				Name: "NSComparisonResult",
				Type: "NSInteger",
				Children: []domain.Declaration{
					{Kind: domain.KindEnumConstant, Name: "NSOrderedAscending", Value: "-1"},
					{Kind: domain.KindEnumConstant, Name: "NSOrderedSame", Value: "0"},
				},
			},
			skip: &domain.Config{Enums: map[string]domain.ItemRules{"NSComparisonResult": {Skipped: true}}},
			want: domain.Statement{
				Kind: domain.StmtEnum,
				Name: "NSComparisonResult",
				Type: "NSInteger",
				Members: []domain.Member{
					{Kind: domain.MemberConstant, Name: "NSOrderedAscending", Value: "-1"},
					{Kind: domain.MemberConstant, Name: "NSOrderedSame", Value: "0"},
				},
			},
		},
		{
			name: "struct",
			decl: domain.Declaration{
				Kind: domain.KindStruct,
				Name: "NSRange",
				Children: []domain.Declaration{
					{Kind: domain.KindField, Name: "location", Type: "NSUInteger"},
					{Kind: domain.KindField, Name: "length", Type: "NSUInteger"},
				},
			},
			skip: &domain.Config{Structs: map[string]domain.ItemRules{"NSRange": {Skipped: true}}},
			want: domain.Statement{
				Kind: domain.StmtStruct,
				Name: "NSRange",
				Members: []domain.Member{
					{Kind: domain.MemberField, Name: "location", Type: "NSUInteger"},
					{Kind: domain.MemberField, Name: "length", Type: "NSUInteger"},
				},
			},
		},
		{
			name: "typedef",
			decl: domain.Declaration{Kind: domain.KindTypedef, Name: "NSRangePointer", Type: "NSRange *"},
			skip: &domain.Config{Typedefs: map[string]domain.ItemRules{"NSRangePointer": {Skipped: true}}},
			want: domain.Statement{Kind: domain.StmtTypedef, Name: "NSRangePointer", Type: "NSRange *"},
		},
		{
			name: "variadic function",
			decl: domain.Declaration{
				Kind:     domain.KindFunction,
				Name:     "NSLog",
				Result:   "void",
				Variadic: true,
				Children: []domain.Declaration{
					{Kind: domain.KindParam, Name: "format", Type: "NSString *"},
				},
			},
			skip: &domain.Config{Functions: map[string]domain.ItemRules{"NSLog": {Skipped: true}}},
			want: domain.Statement{
				Kind:     domain.StmtFn,
				Name:     "NSLog",
				Type:     "void",
				Variadic: true,
				Members:  []domain.Member{{Kind: domain.MemberParam, Name: "format", Type: "NSString *"}},
			},
		},
		{
			name: "static",
			decl: domain.Declaration{Kind: domain.KindVar, Name: "NSFoundationVersionNumber", Type: "double"},
			skip: &domain.Config{Statics: map[string]domain.ItemRules{"NSFoundationVersionNumber": {Skipped: true}}},
			want: domain.Statement{Kind: domain.StmtStatic, Name: "NSFoundationVersionNumber", Type: "double"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stmts := grammar.New().Parse(tt.decl, &domain.Config{})
			require.Len(t, stmts, 1)
			assert.Equal(t, tt.want, stmts[0])

			assert.Empty(t, grammar.New().Parse(tt.decl, tt.skip))
		})
	}
}

func TestParse_Untranslated(t *testing.T) {
	t.Parallel()

	p := grammar.New()
	for _, kind := range []domain.EntityKind{
		domain.KindOther,
		domain.KindInclusionDirective,
		domain.KindMacroDefinition,
		domain.KindMacroExpansion,
	} {
		assert.Empty(t, p.Parse(domain.Declaration{Kind: kind, Name: "x"}, nil), kind.String())
	}
}
