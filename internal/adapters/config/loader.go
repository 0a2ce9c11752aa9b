// Package config loads the per-framework translation configs.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/hdrgen/internal/core/domain"
	"go.trai.ch/hdrgen/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader for <src>/<Framework>/translation-config.yaml.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the config of every framework directory below srcDir.
// Directories without a config file are not tracked.
func (l *Loader) Load(srcDir string) (domain.Configs, error) {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return nil, failure("cannot list frameworks", domain.ErrSrcDirInvalid, err, srcDir)
	}

	configs := make(domain.Configs)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		path := filepath.Join(srcDir, entry.Name(), domain.ConfigFileName)
		cfg, err := readConfig(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}

		configs[entry.Name()] = cfg
	}

	l.warnUnknownImports(configs)
	return configs, nil
}

func (l *Loader) warnUnknownImports(configs domain.Configs) {
	for _, name := range configs.Names() {
		for _, imp := range configs[name].Imports {
			if _, ok := configs[imp]; !ok {
				l.Logger.Warn(fmt.Sprintf("%s imports %s, which has no translation config", name, imp))
			}
		}
	}
}

func readConfig(path string) (*domain.Config, error) {
	// #nosec G304 -- path is built from the source directory listing
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if err != nil {
		return nil, failure("cannot load translation config", domain.ErrConfigReadFailed, err, path)
	}

	var dto TranslationConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		return nil, failure("cannot load translation config", domain.ErrConfigParseFailed, err, path)
	}

	return dto.toDomain(), nil
}

// failure keeps both the sentinel and the underlying cause matchable with errors.Is.
func failure(msg string, sentinel, cause error, path string) error {
	err := zerr.Wrap(errors.Join(sentinel, cause), msg)
	return zerr.With(err, "path", path)
}
