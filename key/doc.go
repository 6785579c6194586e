// Package key defines the normalized keyboard event model: the logical
// Key, the physical Code, key Location, the Modifiers bitset, and the
// Event delivered to window handlers.
//
// A Key carries the meaning of a keypress under the active layout and
// modifier state; printable keys are constructed with Character and carry
// their composed text. A Code identifies the physical position of a key
// and never varies with layout or modifiers. Raw input the translation
// tables do not recognize degrades to Unidentified and CodeUnidentified;
// translation never fails.
package key
