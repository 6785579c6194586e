package shell

import "sync/atomic"

// Counter produces unique nonzero identifiers. The zero value is ready
// to use and safe for concurrent callers; the first Next is 1, so zero
// can serve as an invalid sentinel.
type Counter struct {
	next atomic.Uint64
}

// Next returns a fresh identifier.
func (c *Counter) Next() uint64 {
	return c.next.Add(1)
}

// TimerToken identifies a pending timer request. Zero is invalid.
type TimerToken uint64

// TimerTokenInvalid never identifies a live timer.
const TimerTokenInvalid TimerToken = 0

var timerCounter Counter

// NextTimerToken returns a unique timer token.
func NextTimerToken() TimerToken {
	return TimerToken(timerCounter.Next())
}

// Raw returns the token's numeric value.
func (t TimerToken) Raw() uint64 { return uint64(t) }

// TimerTokenFromRaw reconstructs a token from its numeric value.
func TimerTokenFromRaw(v uint64) TimerToken { return TimerToken(v) }

// IdleToken identifies a scheduled idle callback. Zero is invalid.
type IdleToken uint64

// IdleTokenInvalid never identifies a scheduled idle.
const IdleTokenInvalid IdleToken = 0

var idleCounter Counter

// NextIdleToken returns a unique idle token.
func NextIdleToken() IdleToken {
	return IdleToken(idleCounter.Next())
}

// Raw returns the token's numeric value.
func (t IdleToken) Raw() uint64 { return uint64(t) }

// IdleTokenFromRaw reconstructs a token from its numeric value.
func IdleTokenFromRaw(v uint64) IdleToken { return IdleToken(v) }

// TextFieldToken identifies a registered text input field. Zero is
// invalid.
type TextFieldToken uint64

// TextFieldTokenInvalid never identifies a registered field.
const TextFieldTokenInvalid TextFieldToken = 0

var textFieldCounter Counter

// NextTextFieldToken returns a unique text field token.
func NextTextFieldToken() TextFieldToken {
	return TextFieldToken(textFieldCounter.Next())
}

// Raw returns the token's numeric value.
func (t TextFieldToken) Raw() uint64 { return uint64(t) }

// TextFieldTokenFromRaw reconstructs a token from its numeric value.
func TextFieldTokenFromRaw(v uint64) TextFieldToken { return TextFieldToken(v) }

// FileDialogToken identifies an in-flight file dialog. Zero is invalid.
type FileDialogToken uint64

// FileDialogTokenInvalid never identifies an open dialog.
const FileDialogTokenInvalid FileDialogToken = 0

var fileDialogCounter Counter

// NextFileDialogToken returns a unique file dialog token.
func NextFileDialogToken() FileDialogToken {
	return FileDialogToken(fileDialogCounter.Next())
}

// Raw returns the token's numeric value.
func (t FileDialogToken) Raw() uint64 { return uint64(t) }

// FileDialogTokenFromRaw reconstructs a token from its numeric value.
func FileDialogTokenFromRaw(v uint64) FileDialogToken { return FileDialogToken(v) }
