package board

// Status is the lifecycle state of a game.
type Status int

const (
	NotStarted Status = iota
	Running
	Paused
	GameOver
)

func (s Status) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	}
	return "unknown"
}
