package visitor

import (
	"path/filepath"
	"strings"

	"go.trai.ch/hdrgen/internal/core/domain"
	"go.trai.ch/zerr"
)

// Identify maps a resolved header path to the framework and header stem it belongs to.
// Paths outside frameworksRoot report false without an error.
func Identify(path, frameworksRoot string) (domain.FileIdentity, bool, error) {
	if path == "" {
		return domain.FileIdentity{}, false, nil
	}

	rel, err := filepath.Rel(filepath.Clean(frameworksRoot), filepath.Clean(path))
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return domain.FileIdentity{}, false, nil
	}

	parts := strings.Split(rel, string(filepath.Separator))

	library, ok := strings.CutSuffix(parts[0], domain.FrameworkDirSuffix)
	if !ok || library == "" {
		return domain.FileIdentity{}, false, layoutError(path, "first component is not a framework")
	}

	if len(parts) < 2 {
		return domain.FileIdentity{}, false, layoutError(path, "framework has no header component")
	}

	last := parts[len(parts)-1]
	stem := strings.TrimSuffix(last, filepath.Ext(last))
	if stem == "" {
		return domain.FileIdentity{}, false, layoutError(path, "header has an empty name")
	}

	return domain.FileIdentity{Library: library, File: stem}, true, nil
}

func layoutError(path, reason string) error {
	err := zerr.Wrap(domain.ErrFrameworkLayout, reason)
	return zerr.With(err, "path", path)
}
