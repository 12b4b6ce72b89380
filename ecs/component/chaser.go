package component

// ChaserState identifies a state in the chaser's scripted FSM.
type ChaserState string

const (
	ChaserStateIdle ChaserState = "idle"
	ChaserStateHunt ChaserState = "hunt"
)

// Chaser is an enemy that pursues the player through the maze.
type Chaser struct {
	Speed  float64 // world units per frame
	State  ChaserState
	Script string // prefab-relative tengo script path
}

var ChaserComponent = NewComponent[Chaser]()
