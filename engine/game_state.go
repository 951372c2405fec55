package engine

// GameState is the top-level state machine of a game
//
// Transitions:
//
//	Playing -> Paused   (TogglePause)
//	Paused  -> Playing  (TogglePause)
//	Playing -> Dead     (wall or self collision in MoveSnake)
//	any     -> Playing  (Restart)
type GameState uint8

const (
	StatePlaying GameState = iota
	StatePaused
	StateDead
)

func (s GameState) String() string {
	switch s {
	case StatePaused:
		return "Paused"
	case StateDead:
		return "Dead"
	default:
		return "Playing"
	}
}

// IsActive is true only while Playing; every mutating step checks it
func (s GameState) IsActive() bool {
	return s == StatePlaying
}

func (s GameState) IsPaused() bool {
	return s == StatePaused
}

func (s GameState) IsDead() bool {
	return s == StateDead
}
