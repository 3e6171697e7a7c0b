package event

// Bus carries one game's event emitters. Every engine owns its own bus so
// listeners of concurrent tables never cross-wire.
type Bus struct {
	FirstCardPlayed *firstCardPlayedEmitter
	CardPlayed      *cardPlayedEmitter
	CardsDrawn      *cardsDrawnEmitter
	ColorPicked     *colorPickedEmitter
	UnoCalled       *unoCalledEmitter
	GameWon         *gameWonEmitter
}

func NewBus() *Bus {
	return &Bus{
		FirstCardPlayed: &firstCardPlayedEmitter{},
		CardPlayed:      &cardPlayedEmitter{},
		CardsDrawn:      &cardsDrawnEmitter{},
		ColorPicked:     &colorPickedEmitter{},
		UnoCalled:       &unoCalledEmitter{},
		GameWon:         &gameWonEmitter{},
	}
}

// Listener is the union of all per-event listener interfaces; AddListener
// registers one implementation on every emitter.
type Listener interface {
	FirstCardPlayedListener
	CardPlayedListener
	CardsDrawnListener
	ColorPickedListener
	UnoCalledListener
	GameWonListener
}

func (b *Bus) AddListener(listener Listener) {
	b.FirstCardPlayed.AddListener(listener)
	b.CardPlayed.AddListener(listener)
	b.CardsDrawn.AddListener(listener)
	b.ColorPicked.AddListener(listener)
	b.UnoCalled.AddListener(listener)
	b.GameWon.AddListener(listener)
}
