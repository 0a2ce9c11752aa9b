package domain

import (
	"maps"
	"slices"
)

// MethodRules adjusts the translation of one method or property.
type MethodRules struct {
	Skipped bool
	Unsafe  bool
}

// ClassRules adjusts the translation of a class or protocol and its members.
type ClassRules struct {
	Skipped bool
	Methods map[string]MethodRules
}

// ItemRules adjusts the translation of a free-standing item.
type ItemRules struct {
	Skipped bool
}

// Config holds the translation rules of one framework.
type Config struct {
	Imports   []string
	Classes   map[string]ClassRules
	Protocols map[string]ClassRules
	Functions map[string]ItemRules
	Enums     map[string]ItemRules
	Structs   map[string]ItemRules
	Typedefs  map[string]ItemRules
	Statics   map[string]ItemRules
}

// ClassSkipped reports whether the class is excluded.
func (c *Config) ClassSkipped(name string) bool {
	return c.Classes[name].Skipped
}

// ProtocolSkipped reports whether the protocol is excluded.
func (c *Config) ProtocolSkipped(name string) bool {
	return c.Protocols[name].Skipped
}

// ClassMethod returns the rules for a selector of a class.
func (c *Config) ClassMethod(class, selector string) MethodRules {
	return c.Classes[class].Methods[selector]
}

// ProtocolMethod returns the rules for a selector of a protocol.
func (c *Config) ProtocolMethod(protocol, selector string) MethodRules {
	return c.Protocols[protocol].Methods[selector]
}

// Configs maps framework names to their translation rules.
type Configs map[string]*Config

// Names returns the framework names in sorted order.
func (cs Configs) Names() []string {
	return slices.Sorted(maps.Keys(cs))
}
