package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/winshell/backend"
	"github.com/dshills/winshell/key"
)

// convertKey maps a tcell key event to a logical key and a best-effort
// physical code. Terminals report logical input only, so the code is
// derived where unambiguous and Unidentified otherwise.
func convertKey(e *tcell.EventKey) (key.Key, key.Code) {
	switch e.Key() {
	case tcell.KeyRune:
		r := e.Rune()
		return key.Character(string(r)), runeCode(r)
	case tcell.KeyEscape:
		return key.Escape, key.CodeEscape
	case tcell.KeyEnter:
		return key.Enter, key.CodeEnter
	case tcell.KeyTab:
		return key.Tab, key.CodeTab
	case tcell.KeyBacktab:
		return key.Tab, key.CodeTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.Backspace, key.CodeBackspace
	case tcell.KeyDelete:
		return key.Delete, key.CodeDelete
	case tcell.KeyInsert:
		return key.Insert, key.CodeInsert
	case tcell.KeyHome:
		return key.Home, key.CodeHome
	case tcell.KeyEnd:
		return key.End, key.CodeEnd
	case tcell.KeyPgUp:
		return key.PageUp, key.CodePageUp
	case tcell.KeyPgDn:
		return key.PageDown, key.CodePageDown
	case tcell.KeyUp:
		return key.ArrowUp, key.CodeArrowUp
	case tcell.KeyDown:
		return key.ArrowDown, key.CodeArrowDown
	case tcell.KeyLeft:
		return key.ArrowLeft, key.CodeArrowLeft
	case tcell.KeyRight:
		return key.ArrowRight, key.CodeArrowRight
	case tcell.KeyF1:
		return key.F1, key.CodeF1
	case tcell.KeyF2:
		return key.F2, key.CodeF2
	case tcell.KeyF3:
		return key.F3, key.CodeF3
	case tcell.KeyF4:
		return key.F4, key.CodeF4
	case tcell.KeyF5:
		return key.F5, key.CodeF5
	case tcell.KeyF6:
		return key.F6, key.CodeF6
	case tcell.KeyF7:
		return key.F7, key.CodeF7
	case tcell.KeyF8:
		return key.F8, key.CodeF8
	case tcell.KeyF9:
		return key.F9, key.CodeF9
	case tcell.KeyF10:
		return key.F10, key.CodeF10
	case tcell.KeyF11:
		return key.F11, key.CodeF11
	case tcell.KeyF12:
		return key.F12, key.CodeF12
	default:
		// Ctrl-letter combinations arrive as dedicated tcell keys with
		// the rune carrying the letter.
		if e.Key() >= tcell.KeyCtrlA && e.Key() <= tcell.KeyCtrlZ {
			r := 'a' + rune(e.Key()-tcell.KeyCtrlA)
			return key.Character(string(r)), runeCode(r)
		}
		return key.Unidentified, key.CodeUnidentified
	}
}

// runeCode derives the physical code for runes where the US layout
// makes it unambiguous.
func runeCode(r rune) key.Code {
	switch {
	case r >= 'a' && r <= 'z':
		return key.CodeKeyA + key.Code(r-'a')
	case r >= 'A' && r <= 'Z':
		return key.CodeKeyA + key.Code(r-'A')
	case r >= '1' && r <= '9':
		return key.CodeDigit1 + key.Code(r-'1')
	case r == '0':
		return key.CodeDigit0
	case r == ' ':
		return key.CodeSpace
	default:
		return key.CodeUnidentified
	}
}

// convertMod converts a tcell modifier mask to the raw mask.
func convertMod(m tcell.ModMask) backend.ModMask {
	var result backend.ModMask
	if m&tcell.ModShift != 0 {
		result |= backend.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= backend.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= backend.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= backend.ModMeta
	}
	return result
}
