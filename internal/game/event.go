package game

// EventKind identifies an input event.
type EventKind int

const (
	EventLetter EventKind = iota + 1
	EventDelete
	EventSubmit
	EventRestart
)

func (k EventKind) String() string {
	switch k {
	case EventLetter:
		return "letter"
	case EventDelete:
		return "delete"
	case EventSubmit:
		return "submit"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event is an input event for a Session. Rune is only read for EventLetter.
type Event struct {
	Kind EventKind
	Rune rune
}

// LetterEvent builds an EventLetter event.
func LetterEvent(r rune) Event { return Event{Kind: EventLetter, Rune: r} }

// Apply dispatches ev to the matching operation and returns the new state.
// Unknown kinds leave the state unchanged.
func (s *Session) Apply(ev Event) State {
	switch ev.Kind {
	case EventLetter:
		return s.OnLetterInput(ev.Rune)
	case EventDelete:
		return s.OnDeleteLetter()
	case EventSubmit:
		return s.OnSubmitGuess()
	case EventRestart:
		return s.Restart()
	default:
		return s.State()
	}
}
