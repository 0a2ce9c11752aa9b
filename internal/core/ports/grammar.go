package ports

import "go.trai.ch/hdrgen/internal/core/domain"

// StatementParser turns one declaration into zero or more statements.
//
//go:generate mockgen -source=grammar.go -destination=mocks/mock_grammar.go -package=mocks
type StatementParser interface {
	Parse(decl domain.Declaration, cfg *domain.Config) []domain.Statement
}
