package key

import "testing"

func TestCharacterKey(t *testing.T) {
	k := Character("A")
	if !k.IsCharacter() {
		t.Error("IsCharacter() = false for Character key")
	}
	if got := k.Character(); got != "A" {
		t.Errorf("Character() = %q, want %q", got, "A")
	}
	if got := k.String(); got != "A" {
		t.Errorf("String() = %q, want %q", got, "A")
	}

	// Character keys with the same text compare equal.
	if k != Character("A") {
		t.Error("Character(\"A\") != Character(\"A\")")
	}
	if k == Character("a") {
		t.Error("Character(\"A\") == Character(\"a\")")
	}
}

func TestNamedKeys(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{Unidentified, "Unidentified"},
		{Enter, "Enter"},
		{Escape, "Escape"},
		{ArrowLeft, "ArrowLeft"},
		{Backspace, "Backspace"},
		{CapsLock, "CapsLock"},
		{F1, "F1"},
		{F12, "F12"},
		{MediaPlayPause, "MediaPlayPause"},
		{BrowserBack, "BrowserBack"},
		{AudioVolumeMute, "AudioVolumeMute"},
		{KanaMode, "KanaMode"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.key.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if tt.key.IsCharacter() {
				t.Error("IsCharacter() = true for named key")
			}
			if got := tt.key.Character(); got != "" {
				t.Errorf("Character() = %q for named key, want \"\"", got)
			}
		})
	}
}

func TestZeroKeyIsUnidentified(t *testing.T) {
	var k Key
	if k != Unidentified {
		t.Error("zero Key != Unidentified")
	}
}

func TestIsModifier(t *testing.T) {
	tests := []struct {
		key  Key
		want bool
	}{
		{Shift, true},
		{Control, true},
		{Alt, true},
		{Meta, true},
		{Super, true},
		{Enter, false},
		{Character("a"), false},
		{Unidentified, false},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			if got := tt.key.IsModifier(); got != tt.want {
				t.Errorf("IsModifier() = %v, want %v", got, tt.want)
			}
		})
	}
}
