package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// MusicPlayer stores global music playback state on a dedicated ECS entity.
// The music system mutates this component; no playback state lives on the
// system itself, so the component can be carried across level reloads.
type MusicPlayer struct {
	Players      map[string]*audio.Player
	TrackVolumes map[string]float64

	CurrentTrack  string
	CurrentVolume float64
	CurrentLoop   bool

	PendingTrack  string
	PendingVolume float64
	PendingLoop   bool
	PendingActive bool

	FadeStep float64

	// Failed remembers tracks that could not be loaded so each one warns
	// exactly once and is never retried.
	Failed map[string]bool
}

var MusicPlayerComponent = NewComponent[MusicPlayer]()
