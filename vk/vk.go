// Package vk defines the virtual-key-code raw representation and the
// pure translation tables that normalize it. Virtual-key backends report
// an abstract key identifier without composed text; KeyOf composes the
// character for the current shift state from a lookup of unshifted and
// shifted pairs, and CodeOf maps the identifier to its physical position
// independent of any modifier.
package vk

// Key is a backend virtual-key code. The zero value is Unknown.
type Key uint16

const (
	Unknown Key = iota

	// Top-row digits
	VK1
	VK2
	VK3
	VK4
	VK5
	VK6
	VK7
	VK8
	VK9
	VK0

	// Letters
	VKA
	VKB
	VKC
	VKD
	VKE
	VKF
	VKG
	VKH
	VKI
	VKJ
	VKK
	VKL
	VKM
	VKN
	VKO
	VKP
	VKQ
	VKR
	VKS
	VKT
	VKU
	VKV
	VKW
	VKX
	VKY
	VKZ

	VKEscape

	// Function keys
	VKF1
	VKF2
	VKF3
	VKF4
	VKF5
	VKF6
	VKF7
	VKF8
	VKF9
	VKF10
	VKF11
	VKF12
	VKF13
	VKF14
	VKF15
	VKF16
	VKF17
	VKF18
	VKF19
	VKF20
	VKF21
	VKF22
	VKF23
	VKF24

	VKSnapshot
	VKScroll
	VKPause

	VKInsert
	VKHome
	VKDelete
	VKEnd
	VKPageDown
	VKPageUp

	VKLeft
	VKUp
	VKRight
	VKDown

	VKBack
	VKReturn
	VKSpace
	VKTab

	VKCompose
	VKCapital
	VKNumlock

	// Numpad
	VKNumpad0
	VKNumpad1
	VKNumpad2
	VKNumpad3
	VKNumpad4
	VKNumpad5
	VKNumpad6
	VKNumpad7
	VKNumpad8
	VKNumpad9
	VKNumpadAdd
	VKNumpadComma
	VKNumpadDecimal
	VKNumpadDivide
	VKNumpadEnter
	VKNumpadEquals
	VKNumpadMultiply
	VKNumpadSubtract

	// Punctuation
	VKApostrophe
	VKBackslash
	VKComma
	VKEquals
	VKGrave
	VKLBracket
	VKMinus
	VKOEM102
	VKPeriod
	VKRBracket
	VKSemicolon
	VKSlash
	VKYen

	// Modifier keys, left and right variants
	VKLAlt
	VKLControl
	VKLShift
	VKLWin
	VKRAlt
	VKRControl
	VKRShift
	VKRWin

	// IME keys
	VKConvert
	VKKana
	VKKanji
	VKNoConvert

	// Media, browser and device keys
	VKApps
	VKMail
	VKMediaSelect
	VKMediaStop
	VKMute
	VKNavigateBackward
	VKNavigateForward
	VKNextTrack
	VKPlayPause
	VKPower
	VKPrevTrack
	VKSleep
	VKStop
	VKSysrq
	VKVolumeDown
	VKVolumeUp
	VKWake
	VKWebBack
	VKWebFavorites
	VKWebForward
	VKWebHome
	VKWebRefresh
	VKWebSearch
	VKWebStop

	VKCopy
	VKCut
	VKPaste

	vkCount // number of virtual keys; keep last
)
