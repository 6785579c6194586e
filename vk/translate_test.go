package vk

import (
	"testing"

	"github.com/dshills/winshell/key"
)

func TestKeyOfShiftPairs(t *testing.T) {
	tests := []struct {
		name      string
		vk        Key
		unshifted string
		shifted   string
	}{
		{"digit 1", VK1, "1", "!"},
		{"digit 2", VK2, "2", "@"},
		{"digit 3", VK3, "3", "#"},
		{"digit 4", VK4, "4", "$"},
		{"digit 5", VK5, "5", "%"},
		{"digit 6", VK6, "6", "^"},
		{"digit 7", VK7, "7", "&"},
		{"digit 8", VK8, "8", "*"},
		{"digit 9", VK9, "9", "("},
		{"digit 0", VK0, "0", ")"},
		{"letter a", VKA, "a", "A"},
		{"letter z", VKZ, "z", "Z"},
		{"comma", VKComma, ",", "<"},
		{"period", VKPeriod, ".", ">"},
		{"slash", VKSlash, "/", "?"},
		{"semicolon", VKSemicolon, ";", ":"},
		{"apostrophe", VKApostrophe, "'", "\""},
		{"bracket left", VKLBracket, "[", "{"},
		{"bracket right", VKRBracket, "]", "}"},
		{"backslash", VKBackslash, "\\", "|"},
		{"minus", VKMinus, "-", "_"},
		{"equals", VKEquals, "=", "+"},
		{"grave", VKGrave, "`", "~"},
		{"space", VKSpace, " ", " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyOf(tt.vk, false); got != key.Character(tt.unshifted) {
				t.Errorf("KeyOf(%v, false) = %v, want %q", tt.vk, got, tt.unshifted)
			}
			if got := KeyOf(tt.vk, true); got != key.Character(tt.shifted) {
				t.Errorf("KeyOf(%v, true) = %v, want %q", tt.vk, got, tt.shifted)
			}
		})
	}
}

func TestKeyOfNamed(t *testing.T) {
	tests := []struct {
		vk   Key
		want key.Key
	}{
		{VKEscape, key.Escape},
		{VKReturn, key.Enter},
		{VKNumpadEnter, key.Enter},
		{VKBack, key.Backspace},
		{VKTab, key.Tab},
		{VKLeft, key.ArrowLeft},
		{VKUp, key.ArrowUp},
		{VKF1, key.F1},
		{VKF12, key.F12},
		{VKLShift, key.Shift},
		{VKRShift, key.Shift},
		{VKLControl, key.Control},
		{VKRControl, key.Control},
		{VKLAlt, key.Alt},
		{VKRAlt, key.Alt},
		{VKLWin, key.Meta},
		{VKRWin, key.Meta},
		{VKMute, key.AudioVolumeMute},
		{VKPlayPause, key.MediaPlayPause},
		{VKWebHome, key.BrowserHome},
		{VKKana, key.KanaMode},
		{VKConvert, key.Convert},
		{VKCopy, key.Copy},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			// Named keys ignore shift entirely.
			if got := KeyOf(tt.vk, false); got != tt.want {
				t.Errorf("KeyOf(%v, false) = %v, want %v", tt.vk, got, tt.want)
			}
			if got := KeyOf(tt.vk, true); got != tt.want {
				t.Errorf("KeyOf(%v, true) = %v, want %v", tt.vk, got, tt.want)
			}
		})
	}
}

func TestKeyOfUnmapped(t *testing.T) {
	tests := []struct {
		name string
		vk   Key
	}{
		{"unknown", Unknown},
		{"f13", VKF13},
		{"f24", VKF24},
		{"out of range", Key(9999)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyOf(tt.vk, false); got != key.Unidentified {
				t.Errorf("KeyOf(%v, false) = %v, want Unidentified", tt.vk, got)
			}
			if got := CodeOf(tt.vk); got != key.CodeUnidentified {
				t.Errorf("CodeOf(%v) = %v, want CodeUnidentified", tt.vk, got)
			}
		})
	}
}

func TestCodeOfShiftInvariant(t *testing.T) {
	// The code of a physical key must not vary with shift, even though
	// the logical key does.
	for v := Key(0); v < vkCount; v++ {
		code := CodeOf(v)
		if code != CodeOf(v) {
			t.Fatalf("CodeOf(%d) is not deterministic", v)
		}
		lower := KeyOf(v, false)
		upper := KeyOf(v, true)
		if lower.IsCharacter() && upper.IsCharacter() && code == key.CodeUnidentified {
			t.Errorf("character key %d has no physical code", v)
		}
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		vk   Key
		want key.Code
	}{
		{VKA, key.CodeKeyA},
		{VK1, key.CodeDigit1},
		{VKReturn, key.CodeEnter},
		{VKNumpadEnter, key.CodeNumpadEnter},
		{VKLShift, key.CodeShiftLeft},
		{VKRShift, key.CodeShiftRight},
		{VKLAlt, key.CodeAltLeft},
		{VKRAlt, key.CodeAltRight},
		{VKOEM102, key.CodeIntlBackslash},
		{VKYen, key.CodeIntlYen},
		{VKMute, key.CodeAudioVolumeMute},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			if got := CodeOf(tt.vk); got != tt.want {
				t.Errorf("CodeOf(%v) = %v, want %v", tt.vk, got, tt.want)
			}
		})
	}
}

func TestNumpadEnterDistinctFromMainEnter(t *testing.T) {
	if KeyOf(VKReturn, false) != KeyOf(VKNumpadEnter, false) {
		t.Error("numpad enter and main enter produce different logical keys")
	}
	mainCode := CodeOf(VKReturn)
	padCode := CodeOf(VKNumpadEnter)
	if mainCode == padCode {
		t.Error("numpad enter and main enter share a physical code")
	}
	if loc := padCode.Location(); loc != key.LocationNumpad {
		t.Errorf("numpad enter location = %v, want Numpad", loc)
	}
	if loc := mainCode.Location(); loc != key.LocationStandard {
		t.Errorf("main enter location = %v, want Standard", loc)
	}
}

func TestModifierVariantsShareKeyDistinctCode(t *testing.T) {
	pairs := []struct {
		left, right Key
	}{
		{VKLShift, VKRShift},
		{VKLControl, VKRControl},
		{VKLAlt, VKRAlt},
		{VKLWin, VKRWin},
	}

	for _, p := range pairs {
		if KeyOf(p.left, false) != KeyOf(p.right, false) {
			t.Errorf("left/right variants of %v map to different keys", KeyOf(p.left, false))
		}
		lc, rc := CodeOf(p.left), CodeOf(p.right)
		if lc == rc {
			t.Errorf("left/right variants share code %v", lc)
		}
		if lc.Location() != key.LocationLeft {
			t.Errorf("left variant location = %v", lc.Location())
		}
		if rc.Location() != key.LocationRight {
			t.Errorf("right variant location = %v", rc.Location())
		}
	}
}

func TestTranslationIsPure(t *testing.T) {
	// Translating the same raw input twice yields identical output.
	for _, v := range []Key{VKA, VK1, VKReturn, VKF5, Unknown, Key(5000)} {
		for _, shifted := range []bool{false, true} {
			first := KeyOf(v, shifted)
			second := KeyOf(v, shifted)
			if first != second {
				t.Errorf("KeyOf(%v, %v) not idempotent: %v then %v", v, shifted, first, second)
			}
		}
		if CodeOf(v) != CodeOf(v) {
			t.Errorf("CodeOf(%v) not idempotent", v)
		}
	}
}
