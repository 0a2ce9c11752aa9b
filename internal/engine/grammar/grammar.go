// Package grammar turns one detached declaration into output statements.
package grammar

import (
	"go.trai.ch/hdrgen/internal/core/domain"
)

// Parser implements ports.StatementParser.
type Parser struct{}

// New returns a statement parser.
func New() *Parser {
	return &Parser{}
}

// Parse returns the statements for decl under the rules of cfg.
// Declarations the grammar does not translate yield no statements.
func (p *Parser) Parse(decl domain.Declaration, cfg *domain.Config) []domain.Statement {
	if cfg == nil {
		cfg = &domain.Config{}
	}

	var stmt domain.Statement
	switch decl.Kind {
	case domain.KindObjCInterface:
		if cfg.ClassSkipped(decl.Name) {
			return nil
		}
		stmt = container(domain.StmtClass, decl, func(sel string) domain.MethodRules {
			return cfg.ClassMethod(decl.Name, sel)
		})
		stmt.Superclass = firstRef(decl, domain.KindObjCSuperClassRef)

	case domain.KindObjCCategory:
		class := firstRef(decl, domain.KindObjCClassRef)
		if cfg.ClassSkipped(class) {
			return nil
		}
		stmt = container(domain.StmtCategory, decl, func(sel string) domain.MethodRules {
			return cfg.ClassMethod(class, sel)
		})
		stmt.Superclass = class

	case domain.KindObjCProtocol:
		if cfg.ProtocolSkipped(decl.Name) {
			return nil
		}
		stmt = container(domain.StmtProtocol, decl, func(sel string) domain.MethodRules {
			return cfg.ProtocolMethod(decl.Name, sel)
		})

	case domain.KindEnum:
		if cfg.Enums[decl.Name].Skipped {
			return nil
		}
		stmt = head(domain.StmtEnum, decl)
		stmt.Type = decl.Type
		for _, c := range decl.ChildrenOf(domain.KindEnumConstant) {
			stmt.Members = append(stmt.Members, domain.Member{
				Kind:   domain.MemberConstant,
				Name:   c.Name,
				Value:  c.Value,
				Origin: c.Location,
			})
		}

	case domain.KindStruct:
		if cfg.Structs[decl.Name].Skipped {
			return nil
		}
		stmt = head(domain.StmtStruct, decl)
		stmt.Members = typed(decl, domain.KindField, domain.MemberField)

	case domain.KindTypedef:
		if cfg.Typedefs[decl.Name].Skipped {
			return nil
		}
		stmt = head(domain.StmtTypedef, decl)
		stmt.Type = decl.Type

	case domain.KindFunction:
		if cfg.Functions[decl.Name].Skipped {
			return nil
		}
		stmt = head(domain.StmtFn, decl)
		stmt.Type = decl.Result
		stmt.Variadic = decl.Variadic
		stmt.Members = typed(decl, domain.KindParam, domain.MemberParam)

	case domain.KindVar:
		if cfg.Statics[decl.Name].Skipped {
			return nil
		}
		stmt = head(domain.StmtStatic, decl)
		stmt.Type = decl.Type

	default:
		return nil
	}

	return []domain.Statement{stmt}
}

func head(kind domain.StatementKind, decl domain.Declaration) domain.Statement {
	return domain.Statement{
		Kind:   kind,
		Name:   decl.Name,
		Origin: decl.Location,
	}
}

// container builds a class, category or protocol statement. rules resolves
// the config of one selector or property name.
func container(kind domain.StatementKind, decl domain.Declaration, rules func(string) domain.MethodRules) domain.Statement {
	stmt := head(kind, decl)

	for _, c := range decl.Children {
		var member domain.Member
		switch c.Kind {
		case domain.KindObjCProtocolRef:
			stmt.Protocols = append(stmt.Protocols, c.Name)
			continue
		case domain.KindObjCInstanceMethod:
			member = domain.Member{Kind: domain.MemberMethod, Type: c.Result}
		case domain.KindObjCClassMethod:
			member = domain.Member{Kind: domain.MemberClassMethod, Type: c.Result}
		case domain.KindObjCProperty:
			member = domain.Member{Kind: domain.MemberProperty, Type: c.Type}
		default:
			continue
		}

		r := rules(c.Name)
		if r.Skipped {
			continue
		}
		member.Name = c.Name
		member.Unsafe = r.Unsafe
		member.Origin = c.Location
		stmt.Members = append(stmt.Members, member)
	}

	return stmt
}

func typed(decl domain.Declaration, child domain.EntityKind, kind domain.MemberKind) []domain.Member {
	var members []domain.Member
	for _, c := range decl.ChildrenOf(child) {
		members = append(members, domain.Member{
			Kind:   kind,
			Name:   c.Name,
			Type:   c.Type,
			Origin: c.Location,
		})
	}
	return members
}

func firstRef(decl domain.Declaration, kind domain.EntityKind) string {
	for _, c := range decl.Children {
		if c.Kind == kind {
			return c.Name
		}
	}
	return ""
}
