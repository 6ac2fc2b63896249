// Package input turns key presses into named actions.
//
// A Keymap binds key specifications ("enter", "ctrl+s", "shift+enter") to
// actions. A binding may name a fallback action that runs when the primary
// action aborts, which is how Enter splits a string when it can and inserts
// a plain newline otherwise.
package input
