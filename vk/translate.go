package vk

import "github.com/dshills/winshell/key"

// chars maps character-producing virtual keys to their unshifted and
// shifted composed text, assuming a US layout. The character table is
// kept separate from the named-key and code tables so shift handling
// never duplicates the position mapping. An empty pair means the key
// does not compose text.
var chars = [vkCount][2]string{
	VK1: {"1", "!"},
	VK2: {"2", "@"},
	VK3: {"3", "#"},
	VK4: {"4", "$"},
	VK5: {"5", "%"},
	VK6: {"6", "^"},
	VK7: {"7", "&"},
	VK8: {"8", "*"},
	VK9: {"9", "("},
	VK0: {"0", ")"},

	VKA: {"a", "A"},
	VKB: {"b", "B"},
	VKC: {"c", "C"},
	VKD: {"d", "D"},
	VKE: {"e", "E"},
	VKF: {"f", "F"},
	VKG: {"g", "G"},
	VKH: {"h", "H"},
	VKI: {"i", "I"},
	VKJ: {"j", "J"},
	VKK: {"k", "K"},
	VKL: {"l", "L"},
	VKM: {"m", "M"},
	VKN: {"n", "N"},
	VKO: {"o", "O"},
	VKP: {"p", "P"},
	VKQ: {"q", "Q"},
	VKR: {"r", "R"},
	VKS: {"s", "S"},
	VKT: {"t", "T"},
	VKU: {"u", "U"},
	VKV: {"v", "V"},
	VKW: {"w", "W"},
	VKX: {"x", "X"},
	VKY: {"y", "Y"},
	VKZ: {"z", "Z"},

	VKSpace: {" ", " "},

	VKApostrophe: {"'", "\""},
	VKBackslash:  {"\\", "|"},
	VKComma:      {",", "<"},
	VKEquals:     {"=", "+"},
	VKGrave:      {"`", "~"},
	VKLBracket:   {"[", "{"},
	VKMinus:      {"-", "_"},
	VKOEM102:     {"\\", "|"},
	VKPeriod:     {".", ">"},
	VKRBracket:   {"]", "}"},
	VKSemicolon:  {";", ":"},
	VKSlash:      {"/", "?"},
	VKYen:        {"¥", "¥"},

	// Numpad keys compose the same text regardless of shift.
	VKNumpad0:        {"0", "0"},
	VKNumpad1:        {"1", "1"},
	VKNumpad2:        {"2", "2"},
	VKNumpad3:        {"3", "3"},
	VKNumpad4:        {"4", "4"},
	VKNumpad5:        {"5", "5"},
	VKNumpad6:        {"6", "6"},
	VKNumpad7:        {"7", "7"},
	VKNumpad8:        {"8", "8"},
	VKNumpad9:        {"9", "9"},
	VKNumpadAdd:      {"+", "+"},
	VKNumpadComma:    {",", ","},
	VKNumpadDecimal:  {".", "."},
	VKNumpadDivide:   {"/", "/"},
	VKNumpadEquals:   {"=", "="},
	VKNumpadMultiply: {"*", "*"},
	VKNumpadSubtract: {"-", "-"},
}

// named maps non-character virtual keys to their normalized Key. Missing
// entries fall through to the zero value, key.Unidentified.
var named = [vkCount]key.Key{
	VKEscape: key.Escape,

	VKF1:  key.F1,
	VKF2:  key.F2,
	VKF3:  key.F3,
	VKF4:  key.F4,
	VKF5:  key.F5,
	VKF6:  key.F6,
	VKF7:  key.F7,
	VKF8:  key.F8,
	VKF9:  key.F9,
	VKF10: key.F10,
	VKF11: key.F11,
	VKF12: key.F12,

	VKSnapshot: key.PrintScreen,
	VKSysrq:    key.PrintScreen,
	VKScroll:   key.ScrollLock,
	VKPause:    key.Pause,

	VKInsert:   key.Insert,
	VKHome:     key.Home,
	VKDelete:   key.Delete,
	VKEnd:      key.End,
	VKPageDown: key.PageDown,
	VKPageUp:   key.PageUp,

	VKLeft:  key.ArrowLeft,
	VKUp:    key.ArrowUp,
	VKRight: key.ArrowRight,
	VKDown:  key.ArrowDown,

	VKBack:   key.Backspace,
	VKReturn: key.Enter,
	VKTab:    key.Tab,

	VKCompose: key.Compose,
	VKCapital: key.CapsLock,
	VKNumlock: key.NumLock,

	// Numpad Enter shares the logical key with main Enter; its distinct
	// position lives in the code table.
	VKNumpadEnter: key.Enter,

	VKLAlt:     key.Alt,
	VKRAlt:     key.Alt,
	VKLControl: key.Control,
	VKRControl: key.Control,
	VKLShift:   key.Shift,
	VKRShift:   key.Shift,
	VKLWin:     key.Meta,
	VKRWin:     key.Meta,

	VKConvert:   key.Convert,
	VKKana:      key.KanaMode,
	VKKanji:     key.KanjiMode,
	VKNoConvert: key.NonConvert,

	VKApps:             key.ContextMenu,
	VKMail:             key.MailSend,
	VKMediaSelect:      key.MediaApps,
	VKMediaStop:        key.MediaStop,
	VKMute:             key.AudioVolumeMute,
	VKNavigateBackward: key.BrowserBack,
	VKNavigateForward:  key.BrowserForward,
	VKNextTrack:        key.MediaTrackNext,
	VKPlayPause:        key.MediaPlayPause,
	VKPower:            key.Power,
	VKPrevTrack:        key.MediaTrackPrevious,
	VKSleep:            key.Standby,
	VKStop:             key.MediaStop,
	VKVolumeDown:       key.AudioVolumeDown,
	VKVolumeUp:         key.AudioVolumeUp,
	VKWake:             key.WakeUp,
	VKWebBack:          key.BrowserBack,
	VKWebFavorites:     key.BrowserFavorites,
	VKWebForward:       key.BrowserForward,
	VKWebHome:          key.BrowserHome,
	VKWebRefresh:       key.BrowserRefresh,
	VKWebSearch:        key.BrowserSearch,
	VKWebStop:          key.BrowserStop,

	VKCopy:  key.Copy,
	VKCut:   key.Cut,
	VKPaste: key.Paste,
}

// codes maps virtual keys to their physical position. The mapping is 1:1
// and never consults modifier state. Missing entries fall through to the
// zero value, key.CodeUnidentified.
var codes = [vkCount]key.Code{
	VK1: key.CodeDigit1,
	VK2: key.CodeDigit2,
	VK3: key.CodeDigit3,
	VK4: key.CodeDigit4,
	VK5: key.CodeDigit5,
	VK6: key.CodeDigit6,
	VK7: key.CodeDigit7,
	VK8: key.CodeDigit8,
	VK9: key.CodeDigit9,
	VK0: key.CodeDigit0,

	VKA: key.CodeKeyA,
	VKB: key.CodeKeyB,
	VKC: key.CodeKeyC,
	VKD: key.CodeKeyD,
	VKE: key.CodeKeyE,
	VKF: key.CodeKeyF,
	VKG: key.CodeKeyG,
	VKH: key.CodeKeyH,
	VKI: key.CodeKeyI,
	VKJ: key.CodeKeyJ,
	VKK: key.CodeKeyK,
	VKL: key.CodeKeyL,
	VKM: key.CodeKeyM,
	VKN: key.CodeKeyN,
	VKO: key.CodeKeyO,
	VKP: key.CodeKeyP,
	VKQ: key.CodeKeyQ,
	VKR: key.CodeKeyR,
	VKS: key.CodeKeyS,
	VKT: key.CodeKeyT,
	VKU: key.CodeKeyU,
	VKV: key.CodeKeyV,
	VKW: key.CodeKeyW,
	VKX: key.CodeKeyX,
	VKY: key.CodeKeyY,
	VKZ: key.CodeKeyZ,

	VKEscape: key.CodeEscape,

	VKF1:  key.CodeF1,
	VKF2:  key.CodeF2,
	VKF3:  key.CodeF3,
	VKF4:  key.CodeF4,
	VKF5:  key.CodeF5,
	VKF6:  key.CodeF6,
	VKF7:  key.CodeF7,
	VKF8:  key.CodeF8,
	VKF9:  key.CodeF9,
	VKF10: key.CodeF10,
	VKF11: key.CodeF11,
	VKF12: key.CodeF12,

	VKSnapshot: key.CodePrintScreen,
	VKSysrq:    key.CodePrintScreen,
	VKScroll:   key.CodeScrollLock,
	VKPause:    key.CodePause,

	VKInsert:   key.CodeInsert,
	VKHome:     key.CodeHome,
	VKDelete:   key.CodeDelete,
	VKEnd:      key.CodeEnd,
	VKPageDown: key.CodePageDown,
	VKPageUp:   key.CodePageUp,

	VKLeft:  key.CodeArrowLeft,
	VKUp:    key.CodeArrowUp,
	VKRight: key.CodeArrowRight,
	VKDown:  key.CodeArrowDown,

	VKBack:   key.CodeBackspace,
	VKReturn: key.CodeEnter,
	VKSpace:  key.CodeSpace,
	VKTab:    key.CodeTab,

	VKCapital: key.CodeCapsLock,
	VKNumlock: key.CodeNumLock,

	VKNumpad0:        key.CodeNumpad0,
	VKNumpad1:        key.CodeNumpad1,
	VKNumpad2:        key.CodeNumpad2,
	VKNumpad3:        key.CodeNumpad3,
	VKNumpad4:        key.CodeNumpad4,
	VKNumpad5:        key.CodeNumpad5,
	VKNumpad6:        key.CodeNumpad6,
	VKNumpad7:        key.CodeNumpad7,
	VKNumpad8:        key.CodeNumpad8,
	VKNumpad9:        key.CodeNumpad9,
	VKNumpadAdd:      key.CodeNumpadAdd,
	VKNumpadComma:    key.CodeNumpadComma,
	VKNumpadDecimal:  key.CodeNumpadDecimal,
	VKNumpadDivide:   key.CodeNumpadDivide,
	VKNumpadEnter:    key.CodeNumpadEnter,
	VKNumpadEquals:   key.CodeNumpadEqual,
	VKNumpadMultiply: key.CodeNumpadMultiply,
	VKNumpadSubtract: key.CodeNumpadSubtract,

	VKApostrophe: key.CodeQuote,
	VKBackslash:  key.CodeBackslash,
	VKComma:      key.CodeComma,
	VKEquals:     key.CodeEqual,
	VKGrave:      key.CodeBackquote,
	VKLBracket:   key.CodeBracketLeft,
	VKMinus:      key.CodeMinus,
	VKOEM102:     key.CodeIntlBackslash,
	VKPeriod:     key.CodePeriod,
	VKRBracket:   key.CodeBracketRight,
	VKSemicolon:  key.CodeSemicolon,
	VKSlash:      key.CodeSlash,
	VKYen:        key.CodeIntlYen,

	VKLAlt:     key.CodeAltLeft,
	VKLControl: key.CodeControlLeft,
	VKLShift:   key.CodeShiftLeft,
	VKLWin:     key.CodeMetaLeft,
	VKRAlt:     key.CodeAltRight,
	VKRControl: key.CodeControlRight,
	VKRShift:   key.CodeShiftRight,
	VKRWin:     key.CodeMetaRight,

	VKConvert:   key.CodeConvert,
	VKKana:      key.CodeKanaMode,
	VKNoConvert: key.CodeNonConvert,

	VKApps:        key.CodeContextMenu,
	VKMail:        key.CodeLaunchMail,
	VKMediaSelect: key.CodeMediaSelect,
	VKMediaStop:   key.CodeMediaStop,
	VKMute:        key.CodeAudioVolumeMute,
	VKNextTrack:   key.CodeMediaTrackNext,
	VKPlayPause:   key.CodeMediaPlayPause,
	VKPower:       key.CodePower,
	VKPrevTrack:   key.CodeMediaTrackPrevious,
	VKSleep:       key.CodeSleep,
	VKStop:        key.CodeMediaStop,
	VKVolumeDown:  key.CodeAudioVolumeDown,
	VKVolumeUp:    key.CodeAudioVolumeUp,
	VKWake:        key.CodeWakeUp,

	VKWebBack:      key.CodeBrowserBack,
	VKWebFavorites: key.CodeBrowserFavorites,
	VKWebForward:   key.CodeBrowserForward,
	VKWebHome:      key.CodeBrowserHome,
	VKWebRefresh:   key.CodeBrowserRefresh,
	VKWebSearch:    key.CodeBrowserSearch,
	VKWebStop:      key.CodeBrowserStop,
}

// KeyOf translates a virtual key to its logical Key, composing the
// shift-dependent character for keys that produce text. Unrecognized
// keys translate to key.Unidentified; translation never fails.
func KeyOf(v Key, shifted bool) key.Key {
	if v >= vkCount {
		return key.Unidentified
	}
	if pair := chars[v]; pair[0] != "" {
		if shifted {
			return key.Character(pair[1])
		}
		return key.Character(pair[0])
	}
	return named[v]
}

// CodeOf translates a virtual key to its physical Code. The result never
// depends on modifier state; unrecognized keys translate to
// key.CodeUnidentified.
func CodeOf(v Key) key.Code {
	if v >= vkCount {
		return key.CodeUnidentified
	}
	return codes[v]
}
