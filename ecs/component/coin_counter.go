package component

// CoinCounter is the singleton level progress tracker shown in the HUD.
type CoinCounter struct {
	Collected int
	Total     int
}

var CoinCounterComponent = NewComponent[CoinCounter]()
