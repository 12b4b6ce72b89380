package component

import "github.com/rmendoza/mazebound/levels"

// LevelState is the singleton carrying the live maze and the player's place
// in the level sequence.
type LevelState struct {
	Index int // zero-based position in the manifest
	Name  string
	Music string
	Maze  *levels.Maze
}

var LevelStateComponent = NewComponent[LevelState]()
