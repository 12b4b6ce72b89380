package component

// TTL destroys the entity after the given number of frames.
type TTL struct {
	Frames int
}

var TTLComponent = NewComponent[TTL]()
