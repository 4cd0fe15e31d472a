package core

// Action is a player intent, independent of the key or button that caused it.
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionPause
	ActionReset
	ActionDifficulty // cycle to the next difficulty
	ActionEasy
	ActionNormal
	ActionHard
	ActionSound
	ActionHelp
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionReset:
		return "Reset"
	case ActionDifficulty:
		return "Difficulty"
	case ActionEasy:
		return "Easy"
	case ActionNormal:
		return "Normal"
	case ActionHard:
		return "Hard"
	case ActionSound:
		return "Sound"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
