// SPDX-License-Identifier: MIT

package shell

// NewTerminalForTest edits lines from rw without switching any terminal
// into raw mode.
var NewTerminalForTest = newTerminal
