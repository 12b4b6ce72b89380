package component

// MusicRequest asks the music system to switch tracks. An empty Track stops
// the music. The latest request in a frame wins.
type MusicRequest struct {
	Track         string
	Volume        float64 // 0 = use the track's configured volume
	Loop          bool
	FadeOutFrames int // 0 = default fade
}

var MusicRequestComponent = NewComponent[MusicRequest]()
