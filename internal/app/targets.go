package app

import (
	"maps"
	"slices"
	"strings"

	"go.trai.ch/hdrgen/internal/core/domain"
	"go.trai.ch/zerr"
)

// Targets maps each platform to the target triples parsed for its SDK.
// A platform without triples is skipped.
type Targets map[domain.Platform][]domain.TargetTriple

// DefaultTargets returns the built-in target table.
func DefaultTargets() Targets {
	return Targets{
		domain.PlatformMacOSX: {"x86_64-apple-macosx10.7.0"},
	}
}

// For returns the triples of platform p.
func (t Targets) For(p domain.Platform) []domain.TargetTriple {
	return t[p]
}

// WithOverrides returns a copy of t in which every platform named by a
// "platform=triple" spec has its triples replaced by the given ones, in order.
func (t Targets) WithOverrides(specs []string) (Targets, error) {
	out := make(Targets, len(t))
	maps.Copy(out, t)

	replaced := make(map[domain.Platform]bool)
	for _, spec := range specs {
		p, triple, err := ParseTargetSpec(spec)
		if err != nil {
			return nil, err
		}
		if !replaced[p] {
			out[p] = nil
			replaced[p] = true
		}
		out[p] = append(out[p], triple)
	}

	for p, triples := range out {
		out[p] = slices.Clone(triples)
	}
	return out, nil
}

// ParseTargetSpec parses a "platform=triple" override such as "iPhoneOS=arm64-apple-ios".
func ParseTargetSpec(spec string) (domain.Platform, domain.TargetTriple, error) {
	name, triple, ok := strings.Cut(spec, "=")
	name, triple = strings.TrimSpace(name), strings.TrimSpace(triple)
	if !ok || name == "" || triple == "" {
		return 0, "", zerr.With(zerr.Wrap(domain.ErrInvalidTargetSpec, "cannot parse target"), "spec", spec)
	}

	p, err := domain.ParsePlatform(name)
	if err != nil {
		return 0, "", zerr.With(err, "spec", spec)
	}

	return p, domain.TargetTriple(triple), nil
}
