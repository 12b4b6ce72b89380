package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// Audio holds an entity's sound effects. Systems request playback by
// flipping Play/Stop flags; the audio system services them.
type Audio struct {
	Names   []string
	Players []*audio.Player
	Volume  []float64
	Play    []bool
	Stop    []bool
}

// TriggerSound flips the play flag for the named sound, if present.
func (a *Audio) TriggerSound(name string) {
	if a == nil {
		return
	}
	for i, n := range a.Names {
		if n == name && i < len(a.Play) {
			a.Play[i] = true
			return
		}
	}
}

var AudioComponent = NewComponent[Audio]()
