package component

const DefaultFallMargin = 100.0

// LevelState is the singleton describing the running level.
type LevelState struct {
	Name    string
	ScreenW float64
	ScreenH float64

	SpawnX     float64
	SpawnY     float64
	FallMargin float64

	// NowMs is the clock sample for the current frame.
	NowMs     int64
	StartedMs int64

	GameOver bool
	Cleared  bool

	Instructions []string
}

var LevelStateComponent = NewComponent[LevelState]()

type LevelEventKind uint8

const (
	LevelEventFell LevelEventKind = iota + 1
	LevelEventGameOver
	LevelEventCleared
	LevelEventEnemyKilled
)

func (k LevelEventKind) String() string {
	switch k {
	case LevelEventFell:
		return "fell"
	case LevelEventGameOver:
		return "game_over"
	case LevelEventCleared:
		return "cleared"
	case LevelEventEnemyKilled:
		return "enemy_killed"
	default:
		return "unknown"
	}
}

const EventLevel = "level"

type LevelEvent struct {
	Kind  LevelEventKind
	Level string
}
