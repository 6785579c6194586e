package key

import "strings"

// Modifiers is a bitset of concurrently held modifier keys.
type Modifiers uint32

const (
	// ModNone indicates no modifiers.
	ModNone Modifiers = 0

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt Modifiers = 1 << iota

	// ModAltGraph indicates the AltGr key.
	ModAltGraph

	// ModCapsLock indicates CapsLock is engaged.
	ModCapsLock

	// ModControl indicates the Control key.
	ModControl

	// ModFn indicates the Fn key.
	ModFn

	// ModFnLock indicates FnLock is engaged.
	ModFnLock

	// ModMeta indicates the Meta key (Cmd on macOS, Win on Windows).
	ModMeta

	// ModNumLock indicates NumLock is engaged.
	ModNumLock

	// ModScrollLock indicates ScrollLock is engaged.
	ModScrollLock

	// ModShift indicates the Shift key.
	ModShift

	// ModSymbol indicates the Symbol modifier.
	ModSymbol

	// ModSymbolLock indicates SymbolLock is engaged.
	ModSymbolLock

	// ModHyper indicates the Hyper modifier.
	ModHyper

	// ModSuper indicates the Super modifier.
	ModSuper

	// modAll is the full flag domain.
	modAll = ModAlt | ModAltGraph | ModCapsLock | ModControl | ModFn |
		ModFnLock | ModMeta | ModNumLock | ModScrollLock | ModShift |
		ModSymbol | ModSymbolLock | ModHyper | ModSuper
)

// Contains returns true if every flag set in other is also set in m.
func (m Modifiers) Contains(other Modifiers) bool {
	return m&other == other
}

// Set inserts or removes the given flags without perturbing the rest.
func (m *Modifiers) Set(other Modifiers, value bool) {
	if value {
		*m |= other
	} else {
		*m &^= other
	}
}

// With returns a copy with the given flags added.
func (m Modifiers) With(other Modifiers) Modifiers {
	return m | other
}

// Without returns a copy with the given flags removed.
func (m Modifiers) Without(other Modifiers) Modifiers {
	return m &^ other
}

// Not returns the complement within the flag domain.
func (m Modifiers) Not() Modifiers {
	return ^m & modAll
}

// IsEmpty returns true if no flags are set.
func (m Modifiers) IsEmpty() bool {
	return m == ModNone
}

// Shift returns true if the Shift flag is set.
func (m Modifiers) Shift() bool {
	return m.Contains(ModShift)
}

// Ctrl returns true if the Control flag is set.
func (m Modifiers) Ctrl() bool {
	return m.Contains(ModControl)
}

// Alt returns true if the Alt flag is set.
func (m Modifiers) Alt() bool {
	return m.Contains(ModAlt)
}

// Meta returns true if the Meta flag is set.
func (m Modifiers) Meta() bool {
	return m.Contains(ModMeta)
}

// modifierNames lists flags in display order.
var modifierNames = []struct {
	flag Modifiers
	name string
}{
	{ModControl, "Ctrl"},
	{ModAlt, "Alt"},
	{ModAltGraph, "AltGraph"},
	{ModShift, "Shift"},
	{ModMeta, "Meta"},
	{ModCapsLock, "CapsLock"},
	{ModNumLock, "NumLock"},
	{ModScrollLock, "ScrollLock"},
	{ModFn, "Fn"},
	{ModFnLock, "FnLock"},
	{ModSymbol, "Symbol"},
	{ModSymbolLock, "SymbolLock"},
	{ModHyper, "Hyper"},
	{ModSuper, "Super"},
}

// String returns a human-readable representation like "Ctrl+Shift".
func (m Modifiers) String() string {
	if m == ModNone {
		return ""
	}
	var parts []string
	for _, mn := range modifierNames {
		if m.Contains(mn.flag) {
			parts = append(parts, mn.name)
		}
	}
	return strings.Join(parts, "+")
}
