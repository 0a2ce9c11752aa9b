// Package validator checks that independent parses produced the same model.
package validator

import (
	"slices"
	"strings"

	"go.trai.ch/hdrgen/internal/core/domain"
	"go.trai.ch/zerr"
)

// Compare returns an error describing the first divergence between two results.
// Both results must track the same frameworks.
func Compare(a, b domain.Libraries) error {
	left, right := a.Names(), b.Names()
	if !slices.Equal(left, right) {
		err := zerr.Wrap(domain.ErrLibrarySetMismatch, "cannot compare results")
		err = zerr.With(err, "left", strings.Join(left, ","))
		return zerr.With(err, "right", strings.Join(right, ","))
	}

	for _, name := range left {
		la, lb := a[name], b[name]
		if Digest(la) == Digest(lb) {
			continue
		}
		return locate(name, la, lb)
	}

	if !a.Equal(b) {
		for _, name := range left {
			if !a[name].Equal(b[name]) {
				return locate(name, a[name], b[name])
			}
		}
	}

	return nil
}

// locate reports the first file and statement at which two libraries diverge.
func locate(library string, a, b *domain.Library) error {
	err := zerr.With(zerr.Wrap(domain.ErrStructuralMismatch, "results diverge"), "library", library)

	names := a.FileNames()
	if other := b.FileNames(); !slices.Equal(names, other) {
		return zerr.With(err, "file", firstMissing(names, other))
	}

	for _, name := range names {
		sa, sb := a.Files[name].Statements, b.Files[name].Statements
		for i := range max(len(sa), len(sb)) {
			if i < len(sa) && i < len(sb) && sa[i].Equal(sb[i]) {
				continue
			}

			err = zerr.With(err, "file", name)
			err = zerr.With(err, "statement", i)
			if i < len(sa) {
				err = zerr.With(err, "left", describe(sa[i]))
			}
			if i < len(sb) {
				err = zerr.With(err, "right", describe(sb[i]))
			}
			return err
		}
	}

	return err
}

// firstMissing returns the first name present in only one of two sorted lists.
func firstMissing(a, b []string) string {
	for _, n := range a {
		if _, found := slices.BinarySearch(b, n); !found {
			return n
		}
	}
	for _, n := range b {
		if _, found := slices.BinarySearch(a, n); !found {
			return n
		}
	}
	return ""
}

func describe(stmt domain.Statement) string {
	return string(stmt.Kind) + " " + stmt.Name + " at " + stmt.Origin.String()
}
