// Package sdk discovers the SDK of every platform below a developer directory.
package sdk

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/hdrgen/internal/core/domain"
	"go.trai.ch/zerr"
)

// Locator implements ports.SdkLocator.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Discover returns one SDK per platform found below developerDir, in platform order.
func (l *Locator) Discover(developerDir string) ([]domain.SdkPath, error) {
	info, err := os.Stat(developerDir)
	if err != nil || !info.IsDir() {
		return nil, zerr.With(zerr.Wrap(domain.ErrDeveloperDirInvalid, "cannot discover sdks"), "path", developerDir)
	}

	platforms, err := platformDirs(filepath.Join(developerDir, domain.PlatformsDirName))
	if err != nil {
		return nil, err
	}
	if len(platforms) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoPlatforms, "cannot discover sdks"), "path", developerDir)
	}

	var sdks []domain.SdkPath
	for _, p := range domain.Platforms() {
		dir, ok := platforms[p]
		if !ok {
			continue
		}

		root, err := selectSdk(p, dir)
		if err != nil {
			return nil, err
		}
		sdks = append(sdks, domain.SdkPath{Platform: p, Path: root})
	}

	return sdks, nil
}

// platformDirs maps every known platform to its directory. Unknown platforms are ignored.
func platformDirs(root string) (map[domain.Platform]string, error) {
	entries, err := os.ReadDir(root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrDeveloperDirInvalid, err), "cannot list platforms"), "path", root)
	}

	dirs := make(map[domain.Platform]string)
	for _, entry := range entries {
		name, ok := strings.CutSuffix(entry.Name(), domain.PlatformDirSuffix)
		if !ok || !entry.IsDir() {
			continue
		}
		p, err := domain.ParsePlatform(name)
		if err != nil {
			continue
		}
		dirs[p] = filepath.Join(root, entry.Name())
	}
	return dirs, nil
}

// selectSdk returns the only non-symlinked SDK of the platform that declares that platform.
func selectSdk(p domain.Platform, platformDir string) (string, error) {
	sdksDir := domain.SdksDir(platformDir)

	entries, err := os.ReadDir(sdksDir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", zerr.With(zerr.Wrap(errors.Join(domain.ErrDeveloperDirInvalid, err), "cannot list sdks"), "path", sdksDir)
	}

	var candidates []string
	for _, entry := range entries {
		// ReadDir reports symlinks with their own type, so aliases such as
		// MacOSX14.sdk -> MacOSX.sdk are not directories here.
		if !entry.IsDir() || !strings.HasSuffix(entry.Name(), domain.SdkDirSuffix) {
			continue
		}

		root := filepath.Join(sdksDir, entry.Name())
		ok, err := declares(root, entry.Name(), p)
		if err != nil {
			return "", err
		}
		if ok {
			candidates = append(candidates, root)
		}
	}

	if len(candidates) != 1 {
		err := zerr.With(zerr.Wrap(domain.ErrSdkCardinality, "cannot select sdk"), "platform", p.String())
		err = zerr.With(err, "candidates", len(candidates))
		return "", zerr.With(err, "path", sdksDir)
	}

	return candidates[0], nil
}

// declares reports whether the SDK at root belongs to platform p. The
// settings file wins; without it the directory name decides.
func declares(root, dirName string, p domain.Platform) (bool, error) {
	name, err := declaredPlatform(root)
	if err != nil {
		return false, err
	}

	if name != "" {
		declared, err := domain.ParsePlatform(name)
		return err == nil && declared == p, nil
	}

	declared, ok := domain.PlatformFromSdkDirName(dirName)
	return ok && declared == p, nil
}
