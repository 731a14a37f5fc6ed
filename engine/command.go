package engine

import "fmt"

// Command is a discrete input to a session. Every timer tick and key press
// becomes one Command, so a game is fully described by its command log.
type Command uint8

const (
	Tick Command = iota
	Left
	Right
	Rotate
	FastOn
	FastOff
	Toggle
)

const commandCount = int(Toggle) + 1

var commandNames = [commandCount]string{
	Tick:    "tick",
	Left:    "left",
	Right:   "right",
	Rotate:  "rotate",
	FastOn:  "fast-on",
	FastOff: "fast-off",
	Toggle:  "toggle",
}

func (c Command) String() string {
	if int(c) >= commandCount {
		return fmt.Sprintf("Command(%d)", uint8(c))
	}
	return commandNames[c]
}

// ParseCommand returns the Command with the given String form.
func ParseCommand(name string) (Command, error) {
	for i, n := range commandNames {
		if n == name {
			return Command(i), nil
		}
	}
	return 0, fmt.Errorf("unknown command %q", name)
}
