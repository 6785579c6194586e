package key

// name identifies a named (non-character) key. The zero value is the
// Unidentified sentinel so that the zero Key is safe to dispatch.
type name uint16

const (
	nameUnidentified name = iota
	nameCharacter

	// Modifier keys
	nameAlt
	nameAltGraph
	nameCapsLock
	nameControl
	nameFn
	nameFnLock
	nameMeta
	nameNumLock
	nameScrollLock
	nameShift
	nameSymbol
	nameSymbolLock
	nameHyper
	nameSuper

	// Whitespace keys
	nameEnter
	nameTab

	// Navigation keys
	nameArrowDown
	nameArrowLeft
	nameArrowRight
	nameArrowUp
	nameEnd
	nameHome
	namePageDown
	namePageUp

	// Editing keys
	nameBackspace
	nameClear
	nameCopy
	nameCut
	nameDelete
	nameInsert
	namePaste
	nameRedo
	nameUndo

	// UI keys
	nameContextMenu
	nameEscape
	nameFind
	nameHelp
	namePause
	namePlay
	nameSelect
	nameZoomIn
	nameZoomOut

	// Device keys
	namePower
	namePrintScreen
	nameStandby
	nameWakeUp

	// IME and composition keys
	nameCompose
	nameConvert
	nameDead
	nameModeChange
	nameNonConvert
	nameProcess
	nameHangulMode
	nameHanjaMode
	nameJunjaMode
	nameEisu
	nameHankaku
	nameHiragana
	nameHiraganaKatakana
	nameKanaMode
	nameKanjiMode
	nameKatakana
	nameRomaji
	nameZenkaku
	nameZenkakuHankaku

	// Function keys
	nameF1
	nameF2
	nameF3
	nameF4
	nameF5
	nameF6
	nameF7
	nameF8
	nameF9
	nameF10
	nameF11
	nameF12

	// Media keys
	nameMediaApps
	nameMediaPlayPause
	nameMediaStop
	nameMediaTrackNext
	nameMediaTrackPrevious

	// Audio keys
	nameAudioVolumeDown
	nameAudioVolumeMute
	nameAudioVolumeUp

	// Browser keys
	nameBrowserBack
	nameBrowserFavorites
	nameBrowserForward
	nameBrowserHome
	nameBrowserRefresh
	nameBrowserSearch
	nameBrowserStop

	// Mail keys
	nameMailSend

	nameCount // number of named keys; keep last
)

// Key is the logical meaning of a keypress. Printable keys are built with
// Character and carry their composed text; everything else is one of the
// named values below. Keys are comparable with ==.
type Key struct {
	name name
	text string
}

// Character returns the Key for a printable key producing the given
// composed text.
func Character(text string) Key {
	return Key{name: nameCharacter, text: text}
}

// Named keys. The set follows the W3C UI Events key-value tables; raw
// input that maps to none of these becomes Unidentified.
var (
	Unidentified = Key{}

	Alt        = Key{name: nameAlt}
	AltGraph   = Key{name: nameAltGraph}
	CapsLock   = Key{name: nameCapsLock}
	Control    = Key{name: nameControl}
	Fn         = Key{name: nameFn}
	FnLock     = Key{name: nameFnLock}
	Meta       = Key{name: nameMeta}
	NumLock    = Key{name: nameNumLock}
	ScrollLock = Key{name: nameScrollLock}
	Shift      = Key{name: nameShift}
	Symbol     = Key{name: nameSymbol}
	SymbolLock = Key{name: nameSymbolLock}
	Hyper      = Key{name: nameHyper}
	Super      = Key{name: nameSuper}

	Enter = Key{name: nameEnter}
	Tab   = Key{name: nameTab}

	ArrowDown  = Key{name: nameArrowDown}
	ArrowLeft  = Key{name: nameArrowLeft}
	ArrowRight = Key{name: nameArrowRight}
	ArrowUp    = Key{name: nameArrowUp}
	End        = Key{name: nameEnd}
	Home       = Key{name: nameHome}
	PageDown   = Key{name: namePageDown}
	PageUp     = Key{name: namePageUp}

	Backspace = Key{name: nameBackspace}
	Clear     = Key{name: nameClear}
	Copy      = Key{name: nameCopy}
	Cut       = Key{name: nameCut}
	Delete    = Key{name: nameDelete}
	Insert    = Key{name: nameInsert}
	Paste     = Key{name: namePaste}
	Redo      = Key{name: nameRedo}
	Undo      = Key{name: nameUndo}

	ContextMenu = Key{name: nameContextMenu}
	Escape      = Key{name: nameEscape}
	Find        = Key{name: nameFind}
	Help        = Key{name: nameHelp}
	Pause       = Key{name: namePause}
	Play        = Key{name: namePlay}
	Select      = Key{name: nameSelect}
	ZoomIn      = Key{name: nameZoomIn}
	ZoomOut     = Key{name: nameZoomOut}

	Power       = Key{name: namePower}
	PrintScreen = Key{name: namePrintScreen}
	Standby     = Key{name: nameStandby}
	WakeUp      = Key{name: nameWakeUp}

	Compose          = Key{name: nameCompose}
	Convert          = Key{name: nameConvert}
	Dead             = Key{name: nameDead}
	ModeChange       = Key{name: nameModeChange}
	NonConvert       = Key{name: nameNonConvert}
	Process          = Key{name: nameProcess}
	HangulMode       = Key{name: nameHangulMode}
	HanjaMode        = Key{name: nameHanjaMode}
	JunjaMode        = Key{name: nameJunjaMode}
	Eisu             = Key{name: nameEisu}
	Hankaku          = Key{name: nameHankaku}
	Hiragana         = Key{name: nameHiragana}
	HiraganaKatakana = Key{name: nameHiraganaKatakana}
	KanaMode         = Key{name: nameKanaMode}
	KanjiMode        = Key{name: nameKanjiMode}
	Katakana         = Key{name: nameKatakana}
	Romaji           = Key{name: nameRomaji}
	Zenkaku          = Key{name: nameZenkaku}
	ZenkakuHankaku   = Key{name: nameZenkakuHankaku}

	F1  = Key{name: nameF1}
	F2  = Key{name: nameF2}
	F3  = Key{name: nameF3}
	F4  = Key{name: nameF4}
	F5  = Key{name: nameF5}
	F6  = Key{name: nameF6}
	F7  = Key{name: nameF7}
	F8  = Key{name: nameF8}
	F9  = Key{name: nameF9}
	F10 = Key{name: nameF10}
	F11 = Key{name: nameF11}
	F12 = Key{name: nameF12}

	MediaApps          = Key{name: nameMediaApps}
	MediaPlayPause     = Key{name: nameMediaPlayPause}
	MediaStop          = Key{name: nameMediaStop}
	MediaTrackNext     = Key{name: nameMediaTrackNext}
	MediaTrackPrevious = Key{name: nameMediaTrackPrevious}

	AudioVolumeDown = Key{name: nameAudioVolumeDown}
	AudioVolumeMute = Key{name: nameAudioVolumeMute}
	AudioVolumeUp   = Key{name: nameAudioVolumeUp}

	BrowserBack      = Key{name: nameBrowserBack}
	BrowserFavorites = Key{name: nameBrowserFavorites}
	BrowserForward   = Key{name: nameBrowserForward}
	BrowserHome      = Key{name: nameBrowserHome}
	BrowserRefresh   = Key{name: nameBrowserRefresh}
	BrowserSearch    = Key{name: nameBrowserSearch}
	BrowserStop      = Key{name: nameBrowserStop}

	MailSend = Key{name: nameMailSend}
)

// keyNames maps named keys to their canonical W3C names.
var keyNames = [nameCount]string{
	nameUnidentified: "Unidentified",
	nameCharacter:    "Character",

	nameAlt:        "Alt",
	nameAltGraph:   "AltGraph",
	nameCapsLock:   "CapsLock",
	nameControl:    "Control",
	nameFn:         "Fn",
	nameFnLock:     "FnLock",
	nameMeta:       "Meta",
	nameNumLock:    "NumLock",
	nameScrollLock: "ScrollLock",
	nameShift:      "Shift",
	nameSymbol:     "Symbol",
	nameSymbolLock: "SymbolLock",
	nameHyper:      "Hyper",
	nameSuper:      "Super",

	nameEnter: "Enter",
	nameTab:   "Tab",

	nameArrowDown:  "ArrowDown",
	nameArrowLeft:  "ArrowLeft",
	nameArrowRight: "ArrowRight",
	nameArrowUp:    "ArrowUp",
	nameEnd:        "End",
	nameHome:       "Home",
	namePageDown:   "PageDown",
	namePageUp:     "PageUp",

	nameBackspace: "Backspace",
	nameClear:     "Clear",
	nameCopy:      "Copy",
	nameCut:       "Cut",
	nameDelete:    "Delete",
	nameInsert:    "Insert",
	namePaste:     "Paste",
	nameRedo:      "Redo",
	nameUndo:      "Undo",

	nameContextMenu: "ContextMenu",
	nameEscape:      "Escape",
	nameFind:        "Find",
	nameHelp:        "Help",
	namePause:       "Pause",
	namePlay:        "Play",
	nameSelect:      "Select",
	nameZoomIn:      "ZoomIn",
	nameZoomOut:     "ZoomOut",

	namePower:       "Power",
	namePrintScreen: "PrintScreen",
	nameStandby:     "Standby",
	nameWakeUp:      "WakeUp",

	nameCompose:          "Compose",
	nameConvert:          "Convert",
	nameDead:             "Dead",
	nameModeChange:       "ModeChange",
	nameNonConvert:       "NonConvert",
	nameProcess:          "Process",
	nameHangulMode:       "HangulMode",
	nameHanjaMode:        "HanjaMode",
	nameJunjaMode:        "JunjaMode",
	nameEisu:             "Eisu",
	nameHankaku:          "Hankaku",
	nameHiragana:         "Hiragana",
	nameHiraganaKatakana: "HiraganaKatakana",
	nameKanaMode:         "KanaMode",
	nameKanjiMode:        "KanjiMode",
	nameKatakana:         "Katakana",
	nameRomaji:           "Romaji",
	nameZenkaku:          "Zenkaku",
	nameZenkakuHankaku:   "ZenkakuHankaku",

	nameF1:  "F1",
	nameF2:  "F2",
	nameF3:  "F3",
	nameF4:  "F4",
	nameF5:  "F5",
	nameF6:  "F6",
	nameF7:  "F7",
	nameF8:  "F8",
	nameF9:  "F9",
	nameF10: "F10",
	nameF11: "F11",
	nameF12: "F12",

	nameMediaApps:          "MediaApps",
	nameMediaPlayPause:     "MediaPlayPause",
	nameMediaStop:          "MediaStop",
	nameMediaTrackNext:     "MediaTrackNext",
	nameMediaTrackPrevious: "MediaTrackPrevious",

	nameAudioVolumeDown: "AudioVolumeDown",
	nameAudioVolumeMute: "AudioVolumeMute",
	nameAudioVolumeUp:   "AudioVolumeUp",

	nameBrowserBack:      "BrowserBack",
	nameBrowserFavorites: "BrowserFavorites",
	nameBrowserForward:   "BrowserForward",
	nameBrowserHome:      "BrowserHome",
	nameBrowserRefresh:   "BrowserRefresh",
	nameBrowserSearch:    "BrowserSearch",
	nameBrowserStop:      "BrowserStop",

	nameMailSend: "MailSend",
}

// IsCharacter returns true if this key carries composed text.
func (k Key) IsCharacter() bool {
	return k.name == nameCharacter
}

// Character returns the composed text for character keys, or "" for
// named keys.
func (k Key) Character() string {
	if k.name == nameCharacter {
		return k.text
	}
	return ""
}

// IsModifier returns true if this is a modifier key (Shift, Control,
// Alt, Meta and friends).
func (k Key) IsModifier() bool {
	return k.name >= nameAlt && k.name <= nameSuper
}

// String returns the composed text for character keys and the canonical
// key name otherwise.
func (k Key) String() string {
	if k.name == nameCharacter {
		return k.text
	}
	return keyNames[k.name]
}
