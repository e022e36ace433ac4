package game

type EventType int

const (
	EventFruitSpawned EventType = iota
	EventFruitEaten
	EventSpawnStarved
	EventGameOver
)

// Event is a round notification, delivered synchronously on the caller's
// goroutine. Cell and Fruit are set for spawn/eat events, Cause for game over.
type Event struct {
	Type  EventType
	Cell  Cell
	Fruit Fruit
	Cause CollisionCause
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
