package key

// Code identifies the physical position of a key, independent of the
// active layout and modifier state. The values follow the W3C UI Events
// code tables. The zero value is CodeUnidentified.
type Code uint16

const (
	CodeUnidentified Code = iota

	// Alphanumeric section
	CodeBackquote
	CodeBackslash
	CodeBracketLeft
	CodeBracketRight
	CodeComma
	CodeDigit0
	CodeDigit1
	CodeDigit2
	CodeDigit3
	CodeDigit4
	CodeDigit5
	CodeDigit6
	CodeDigit7
	CodeDigit8
	CodeDigit9
	CodeEqual
	CodeIntlBackslash
	CodeIntlRo
	CodeIntlYen
	CodeKeyA
	CodeKeyB
	CodeKeyC
	CodeKeyD
	CodeKeyE
	CodeKeyF
	CodeKeyG
	CodeKeyH
	CodeKeyI
	CodeKeyJ
	CodeKeyK
	CodeKeyL
	CodeKeyM
	CodeKeyN
	CodeKeyO
	CodeKeyP
	CodeKeyQ
	CodeKeyR
	CodeKeyS
	CodeKeyT
	CodeKeyU
	CodeKeyV
	CodeKeyW
	CodeKeyX
	CodeKeyY
	CodeKeyZ
	CodeMinus
	CodePeriod
	CodeQuote
	CodeSemicolon
	CodeSlash

	// Functional keys in the alphanumeric section
	CodeAltLeft
	CodeAltRight
	CodeBackspace
	CodeCapsLock
	CodeContextMenu
	CodeControlLeft
	CodeControlRight
	CodeEnter
	CodeMetaLeft
	CodeMetaRight
	CodeShiftLeft
	CodeShiftRight
	CodeSpace
	CodeTab

	// IME keys
	CodeConvert
	CodeKanaMode
	CodeLang1
	CodeLang2
	CodeNonConvert

	// Control pad
	CodeDelete
	CodeEnd
	CodeHelp
	CodeHome
	CodeInsert
	CodePageDown
	CodePageUp

	// Arrow pad
	CodeArrowDown
	CodeArrowLeft
	CodeArrowRight
	CodeArrowUp

	// Numpad section
	CodeNumLock
	CodeNumpad0
	CodeNumpad1
	CodeNumpad2
	CodeNumpad3
	CodeNumpad4
	CodeNumpad5
	CodeNumpad6
	CodeNumpad7
	CodeNumpad8
	CodeNumpad9
	CodeNumpadAdd
	CodeNumpadComma
	CodeNumpadDecimal
	CodeNumpadDivide
	CodeNumpadEnter
	CodeNumpadEqual
	CodeNumpadMultiply
	CodeNumpadSubtract

	// Function section
	CodeEscape
	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12
	CodePrintScreen
	CodeScrollLock
	CodePause

	// Media and browser keys
	CodeBrowserBack
	CodeBrowserFavorites
	CodeBrowserForward
	CodeBrowserHome
	CodeBrowserRefresh
	CodeBrowserSearch
	CodeBrowserStop
	CodeLaunchApp1
	CodeLaunchApp2
	CodeLaunchMail
	CodeMediaPlayPause
	CodeMediaSelect
	CodeMediaStop
	CodeMediaTrackNext
	CodeMediaTrackPrevious
	CodePower
	CodeSleep
	CodeAudioVolumeDown
	CodeAudioVolumeMute
	CodeAudioVolumeUp
	CodeWakeUp

	codeCount // number of codes; keep last
)

// codeNames maps codes to their canonical W3C names.
var codeNames = [codeCount]string{
	CodeUnidentified: "Unidentified",

	CodeBackquote:     "Backquote",
	CodeBackslash:     "Backslash",
	CodeBracketLeft:   "BracketLeft",
	CodeBracketRight:  "BracketRight",
	CodeComma:         "Comma",
	CodeDigit0:        "Digit0",
	CodeDigit1:        "Digit1",
	CodeDigit2:        "Digit2",
	CodeDigit3:        "Digit3",
	CodeDigit4:        "Digit4",
	CodeDigit5:        "Digit5",
	CodeDigit6:        "Digit6",
	CodeDigit7:        "Digit7",
	CodeDigit8:        "Digit8",
	CodeDigit9:        "Digit9",
	CodeEqual:         "Equal",
	CodeIntlBackslash: "IntlBackslash",
	CodeIntlRo:        "IntlRo",
	CodeIntlYen:       "IntlYen",
	CodeKeyA:          "KeyA",
	CodeKeyB:          "KeyB",
	CodeKeyC:          "KeyC",
	CodeKeyD:          "KeyD",
	CodeKeyE:          "KeyE",
	CodeKeyF:          "KeyF",
	CodeKeyG:          "KeyG",
	CodeKeyH:          "KeyH",
	CodeKeyI:          "KeyI",
	CodeKeyJ:          "KeyJ",
	CodeKeyK:          "KeyK",
	CodeKeyL:          "KeyL",
	CodeKeyM:          "KeyM",
	CodeKeyN:          "KeyN",
	CodeKeyO:          "KeyO",
	CodeKeyP:          "KeyP",
	CodeKeyQ:          "KeyQ",
	CodeKeyR:          "KeyR",
	CodeKeyS:          "KeyS",
	CodeKeyT:          "KeyT",
	CodeKeyU:          "KeyU",
	CodeKeyV:          "KeyV",
	CodeKeyW:          "KeyW",
	CodeKeyX:          "KeyX",
	CodeKeyY:          "KeyY",
	CodeKeyZ:          "KeyZ",
	CodeMinus:         "Minus",
	CodePeriod:        "Period",
	CodeQuote:         "Quote",
	CodeSemicolon:     "Semicolon",
	CodeSlash:         "Slash",

	CodeAltLeft:      "AltLeft",
	CodeAltRight:     "AltRight",
	CodeBackspace:    "Backspace",
	CodeCapsLock:     "CapsLock",
	CodeContextMenu:  "ContextMenu",
	CodeControlLeft:  "ControlLeft",
	CodeControlRight: "ControlRight",
	CodeEnter:        "Enter",
	CodeMetaLeft:     "MetaLeft",
	CodeMetaRight:    "MetaRight",
	CodeShiftLeft:    "ShiftLeft",
	CodeShiftRight:   "ShiftRight",
	CodeSpace:        "Space",
	CodeTab:          "Tab",

	CodeConvert:    "Convert",
	CodeKanaMode:   "KanaMode",
	CodeLang1:      "Lang1",
	CodeLang2:      "Lang2",
	CodeNonConvert: "NonConvert",

	CodeDelete:   "Delete",
	CodeEnd:      "End",
	CodeHelp:     "Help",
	CodeHome:     "Home",
	CodeInsert:   "Insert",
	CodePageDown: "PageDown",
	CodePageUp:   "PageUp",

	CodeArrowDown:  "ArrowDown",
	CodeArrowLeft:  "ArrowLeft",
	CodeArrowRight: "ArrowRight",
	CodeArrowUp:    "ArrowUp",

	CodeNumLock:        "NumLock",
	CodeNumpad0:        "Numpad0",
	CodeNumpad1:        "Numpad1",
	CodeNumpad2:        "Numpad2",
	CodeNumpad3:        "Numpad3",
	CodeNumpad4:        "Numpad4",
	CodeNumpad5:        "Numpad5",
	CodeNumpad6:        "Numpad6",
	CodeNumpad7:        "Numpad7",
	CodeNumpad8:        "Numpad8",
	CodeNumpad9:        "Numpad9",
	CodeNumpadAdd:      "NumpadAdd",
	CodeNumpadComma:    "NumpadComma",
	CodeNumpadDecimal:  "NumpadDecimal",
	CodeNumpadDivide:   "NumpadDivide",
	CodeNumpadEnter:    "NumpadEnter",
	CodeNumpadEqual:    "NumpadEqual",
	CodeNumpadMultiply: "NumpadMultiply",
	CodeNumpadSubtract: "NumpadSubtract",

	CodeEscape:      "Escape",
	CodeF1:          "F1",
	CodeF2:          "F2",
	CodeF3:          "F3",
	CodeF4:          "F4",
	CodeF5:          "F5",
	CodeF6:          "F6",
	CodeF7:          "F7",
	CodeF8:          "F8",
	CodeF9:          "F9",
	CodeF10:         "F10",
	CodeF11:         "F11",
	CodeF12:         "F12",
	CodePrintScreen: "PrintScreen",
	CodeScrollLock:  "ScrollLock",
	CodePause:       "Pause",

	CodeBrowserBack:        "BrowserBack",
	CodeBrowserFavorites:   "BrowserFavorites",
	CodeBrowserForward:     "BrowserForward",
	CodeBrowserHome:        "BrowserHome",
	CodeBrowserRefresh:     "BrowserRefresh",
	CodeBrowserSearch:      "BrowserSearch",
	CodeBrowserStop:        "BrowserStop",
	CodeLaunchApp1:         "LaunchApp1",
	CodeLaunchApp2:         "LaunchApp2",
	CodeLaunchMail:         "LaunchMail",
	CodeMediaPlayPause:     "MediaPlayPause",
	CodeMediaSelect:        "MediaSelect",
	CodeMediaStop:          "MediaStop",
	CodeMediaTrackNext:     "MediaTrackNext",
	CodeMediaTrackPrevious: "MediaTrackPrevious",
	CodePower:              "Power",
	CodeSleep:              "Sleep",
	CodeAudioVolumeDown:    "AudioVolumeDown",
	CodeAudioVolumeMute:    "AudioVolumeMute",
	CodeAudioVolumeUp:      "AudioVolumeUp",
	CodeWakeUp:             "WakeUp",
}

// String returns the canonical W3C name for the code.
func (c Code) String() string {
	if c >= codeCount {
		return "Unidentified"
	}
	return codeNames[c]
}

// Location identifies which instance of a key was pressed for keys that
// appear in multiple positions on common keyboards.
type Location uint8

const (
	LocationStandard Location = iota
	LocationLeft
	LocationRight
	LocationNumpad
)

// String returns a human-readable name for the location.
func (l Location) String() string {
	switch l {
	case LocationLeft:
		return "Left"
	case LocationRight:
		return "Right"
	case LocationNumpad:
		return "Numpad"
	default:
		return "Standard"
	}
}

// Location returns the key location implied by the physical code:
// Left/Right for the paired modifier keys, Numpad for the numpad
// section, Standard for everything else.
func (c Code) Location() Location {
	switch c {
	case CodeAltLeft, CodeControlLeft, CodeMetaLeft, CodeShiftLeft:
		return LocationLeft
	case CodeAltRight, CodeControlRight, CodeMetaRight, CodeShiftRight:
		return LocationRight
	}
	if c >= CodeNumLock && c <= CodeNumpadSubtract {
		return LocationNumpad
	}
	return LocationStandard
}

// IsNumpad returns true if the code belongs to the numpad section.
func (c Code) IsNumpad() bool {
	return c.Location() == LocationNumpad
}
