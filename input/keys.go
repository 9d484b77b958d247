package input

import "github.com/gdamore/tcell/v2"

// Command is a keyboard-level action outside the puzzle itself
type Command uint8

const (
	CommandNone Command = iota
	CommandQuit
	CommandReset
	CommandPause
	CommandSkip
)

// KeyCommand maps a key event to a command
func KeyCommand(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return CommandQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return CommandQuit
		case 'r':
			return CommandReset
		case 'p', ' ':
			return CommandPause
		case 'n':
			return CommandSkip
		}
	}
	return CommandNone
}
