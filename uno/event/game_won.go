package event

type GameWonPayload struct {
	PlayerName string
	Bot        bool
}

type GameWonListener interface {
	OnGameWon(GameWonPayload)
}

type gameWonEmitter struct {
	listeners []GameWonListener
}

func (e *gameWonEmitter) AddListener(listener GameWonListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *gameWonEmitter) Emit(payload GameWonPayload) {
	for _, listener := range e.listeners {
		listener.OnGameWon(payload)
	}
}
