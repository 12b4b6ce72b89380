package ecs

// EventKind identifies gameplay events pushed during a frame.
type EventKind string

const (
	// EventPlayerCaught fires when a chaser closes on the player.
	EventPlayerCaught EventKind = "player_caught"
	// EventLevelCleared fires when the last coin of a level is collected.
	EventLevelCleared EventKind = "level_cleared"
)

// Event is a frame-scoped notification from a system to the game shell.
type Event struct {
	Kind   EventKind
	Entity Entity
}

// EventQueue is a FIFO drained by the game shell at the end of each frame.
type EventQueue struct {
	items []Event
}

func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all pending events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
