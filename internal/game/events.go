package game

type EventType int

const (
	EventShot EventType = iota
	EventDash
	EventEnemyKilled
	EventPlayerHit
	EventPlayerDied
	EventWaveStarted
	EventRestart
)

func (t EventType) String() string {
	switch t {
	case EventShot:
		return "shot"
	case EventDash:
		return "dash"
	case EventEnemyKilled:
		return "enemy_killed"
	case EventPlayerHit:
		return "player_hit"
	case EventPlayerDied:
		return "player_died"
	case EventWaveStarted:
		return "wave_started"
	case EventRestart:
		return "restart"
	}
	return "unknown"
}

type Event struct {
	Type EventType
	X, Y float64
	Data int // Generic payload (points scored, wave number).
}

type EventHandler func(Event)

// EventBus fans simulation events out to observers. Handlers run inside the
// tick and must not mutate the simulation.
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
