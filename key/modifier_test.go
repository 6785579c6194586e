package key

import "testing"

func TestModifiersContains(t *testing.T) {
	tests := []struct {
		name  string
		mods  Modifiers
		check Modifiers
		want  bool
	}{
		{"empty does not contain shift", ModNone, ModShift, false},
		{"shift contains shift", ModShift, ModShift, true},
		{"shift does not contain ctrl", ModShift, ModControl, false},
		{"combined contains each part", ModShift | ModControl, ModControl, true},
		{"combined contains combination", ModShift | ModControl, ModShift | ModControl, true},
		{"partial overlap is not containment", ModShift, ModShift | ModControl, false},
		{"anything contains empty", ModAlt, ModNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mods.Contains(tt.check); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.check, got, tt.want)
			}
		})
	}
}

func TestModifiersSet(t *testing.T) {
	var m Modifiers

	m.Set(ModShift, true)
	if !m.Shift() {
		t.Error("Shift() = false after Set(ModShift, true)")
	}
	if !m.Contains(ModShift) {
		t.Error("Contains(ModShift) = false after Set(ModShift, true)")
	}

	// Setting an unrelated flag must not perturb shift.
	m.Set(ModControl, true)
	if !m.Shift() || !m.Ctrl() {
		t.Errorf("got %v, want shift and ctrl both set", m)
	}

	m.Set(ModShift, false)
	if m.Shift() {
		t.Error("Shift() = true after Set(ModShift, false)")
	}
	if !m.Ctrl() {
		t.Error("clearing shift also cleared ctrl")
	}

	m.Set(ModControl, false)
	if !m.IsEmpty() {
		t.Errorf("got %v, want empty after clearing all flags", m)
	}
}

func TestModifiersCombine(t *testing.T) {
	a := ModShift | ModAlt
	b := ModMeta | ModCapsLock

	combined := a | b
	if !combined.Contains(a) {
		t.Errorf("(a|b).Contains(a) = false")
	}
	if !combined.Contains(b) {
		t.Errorf("(a|b).Contains(b) = false")
	}

	// OR identity and AND absorption for the empty set.
	if a|ModNone != a {
		t.Error("a | empty != a")
	}
	if a&ModNone != ModNone {
		t.Error("a & empty != empty")
	}
}

func TestModifiersNotClosedOverDomain(t *testing.T) {
	inverted := ModShift.Not()
	if inverted.Contains(ModShift) {
		t.Error("Not() kept the inverted flag")
	}
	if !inverted.Contains(ModControl | ModAlt | ModMeta) {
		t.Error("Not() dropped unrelated flags")
	}
	if inverted|ModShift != modAll {
		t.Errorf("Not() left the flag domain: %v", inverted)
	}
}

func TestModifiersWithWithout(t *testing.T) {
	m := ModNone.With(ModShift).With(ModControl)
	if m != ModShift|ModControl {
		t.Errorf("With chain = %v, want Shift+Ctrl", m)
	}
	if m.Without(ModShift) != ModControl {
		t.Errorf("Without(ModShift) = %v, want Ctrl", m.Without(ModShift))
	}
}

func TestModifiersPredicates(t *testing.T) {
	tests := []struct {
		mods                   Modifiers
		shift, ctrl, alt, meta bool
	}{
		{ModNone, false, false, false, false},
		{ModShift, true, false, false, false},
		{ModControl, false, true, false, false},
		{ModAlt, false, false, true, false},
		{ModMeta, false, false, false, true},
		{ModShift | ModMeta, true, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.mods.String(), func(t *testing.T) {
			if got := tt.mods.Shift(); got != tt.shift {
				t.Errorf("Shift() = %v, want %v", got, tt.shift)
			}
			if got := tt.mods.Ctrl(); got != tt.ctrl {
				t.Errorf("Ctrl() = %v, want %v", got, tt.ctrl)
			}
			if got := tt.mods.Alt(); got != tt.alt {
				t.Errorf("Alt() = %v, want %v", got, tt.alt)
			}
			if got := tt.mods.Meta(); got != tt.meta {
				t.Errorf("Meta() = %v, want %v", got, tt.meta)
			}
		})
	}
}

func TestModifiersString(t *testing.T) {
	tests := []struct {
		mods Modifiers
		want string
	}{
		{ModNone, ""},
		{ModShift, "Shift"},
		{ModControl | ModShift, "Ctrl+Shift"},
		{ModControl | ModAlt | ModMeta, "Ctrl+Alt+Meta"},
	}

	for _, tt := range tests {
		if got := tt.mods.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
