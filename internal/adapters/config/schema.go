package config

import "go.trai.ch/hdrgen/internal/core/domain"

// TranslationConfig is the structure of a translation-config.yaml file.
type TranslationConfig struct {
	Imports   []string            `yaml:"imports"`
	Classes   map[string]ClassDTO `yaml:"class"`
	Protocols map[string]ClassDTO `yaml:"protocol"`
	Functions map[string]ItemDTO  `yaml:"fn"`
	Enums     map[string]ItemDTO  `yaml:"enum"`
	Structs   map[string]ItemDTO  `yaml:"struct"`
	Typedefs  map[string]ItemDTO  `yaml:"typedef"`
	Statics   map[string]ItemDTO  `yaml:"static"`
}

// ClassDTO configures a class or protocol.
type ClassDTO struct {
	Skipped bool                 `yaml:"skipped"`
	Methods map[string]MethodDTO `yaml:"methods"`
}

// MethodDTO configures a method or property, keyed by selector.
type MethodDTO struct {
	Skipped bool `yaml:"skipped"`
	Unsafe  bool `yaml:"unsafe"`
}

// ItemDTO configures a free-standing item.
type ItemDTO struct {
	Skipped bool `yaml:"skipped"`
}

// toDomain converts the file structure into translation rules.
func (c *TranslationConfig) toDomain() *domain.Config {
	return &domain.Config{
		Imports:   c.Imports,
		Classes:   classRules(c.Classes),
		Protocols: classRules(c.Protocols),
		Functions: itemRules(c.Functions),
		Enums:     itemRules(c.Enums),
		Structs:   itemRules(c.Structs),
		Typedefs:  itemRules(c.Typedefs),
		Statics:   itemRules(c.Statics),
	}
}

func classRules(in map[string]ClassDTO) map[string]domain.ClassRules {
	out := make(map[string]domain.ClassRules, len(in))
	for name, dto := range in {
		methods := make(map[string]domain.MethodRules, len(dto.Methods))
		for sel, m := range dto.Methods {
			methods[sel] = domain.MethodRules{Skipped: m.Skipped, Unsafe: m.Unsafe}
		}
		out[name] = domain.ClassRules{Skipped: dto.Skipped, Methods: methods}
	}
	return out
}

func itemRules(in map[string]ItemDTO) map[string]domain.ItemRules {
	out := make(map[string]domain.ItemRules, len(in))
	for name, dto := range in {
		out[name] = domain.ItemRules{Skipped: dto.Skipped}
	}
	return out
}
