package game

import (
	"math/rand"

	"github.com/feel-easy/uno-duel/consts"
	"github.com/feel-easy/uno-duel/uno/card"
	"github.com/feel-easy/uno-duel/uno/card/action"
	"github.com/feel-easy/uno-duel/uno/card/color"
	"github.com/feel-easy/uno-duel/uno/event"
)

// ScoreKeeper records game results and reports the running tally.
type ScoreKeeper interface {
	Record(humanWon bool)
	Stats() (wins, losses int)
}

// Engine owns all rule state of one table: the deck, the discard pile, the
// players' hands, the turn cycler and the active color. Commands are atomic
// units; callers issue one at a time.
type Engine struct {
	players     []*Player
	deck        *Deck
	pile        *Pile
	cycler      *Cycler
	activeColor color.Color
	finished    bool
	winner      *Player
	unoCalled   bool
	rng         *rand.Rand
	bus         *event.Bus
	history     *event.History
	scores      ScoreKeeper
}

func NewEngine(players []*Player, rng *rand.Rand, scores ScoreKeeper) *Engine {
	engine := &Engine{
		players: players,
		deck:    NewDeck(rng),
		pile:    NewPile(),
		cycler:  NewCycler(len(players)),
		rng:     rng,
		bus:     event.NewBus(),
		history: event.NewHistory(consts.HistoryLimit),
		scores:  scores,
	}
	engine.bus.AddListener(engine.history)
	return engine
}

func (e *Engine) Bus() *event.Bus {
	return e.bus
}

// NewGame resets the table: fresh shuffled deck, empty discard and hands,
// seven cards per player in seat order, then a starting card is sought from
// the deck. Non-number cards drawn during the search go back to the deck
// bottom; if the whole deck cycles without a number card, the last-drawn
// card seeds the discard instead.
func (e *Engine) NewGame() {
	e.deck.Reset()
	e.pile = NewPile()
	e.cycler.Reset()
	e.activeColor = nil
	e.finished = false
	e.winner = nil
	e.unoCalled = false
	e.history.Clear()

	for _, player := range e.players {
		player.clearHand()
		player.hand.AddCards(e.deck.DrawMany(consts.StartingHandSize))
	}
	e.placeFirstCard()
}

func (e *Engine) placeFirstCard() {
	for tries := e.deck.Remaining(); tries > 0; tries-- {
		drawnCard, ok := e.deck.Draw()
		if !ok {
			return
		}
		if drawnCard.Kind() == card.KindNumber || tries == 1 {
			e.pile.Add(drawnCard)
			// A wild seed leaves the active color unset until the first
			// play declares one.
			e.activeColor = drawnCard.Color()
			e.bus.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{
				Card: drawnCard,
			})
			return
		}
		e.deck.AddCards([]card.Card{drawnCard})
	}
}

func (e *Engine) CurrentPlayer() *Player {
	return e.players[e.cycler.Current()]
}

func (e *Engine) Players() []*Player {
	return e.players
}

// CanPlay applies the matching rules against the current discard top and
// active color.
func (e *Engine) CanPlay(candidateCard card.Card) bool {
	return Playable(candidateCard, e.pile.Top(), e.activeColor)
}

// PlayableIndexes lists the current player's playable hand positions in
// hand order.
func (e *Engine) PlayableIndexes() []int {
	return e.CurrentPlayer().hand.PlayableIndexes(e.pile.Top(), e.activeColor)
}

// PlayableCards lists the current player's playable cards in hand order.
func (e *Engine) PlayableCards() []card.Card {
	player := e.CurrentPlayer()
	var cards []card.Card
	for _, index := range e.PlayableIndexes() {
		playableCard, _ := player.hand.CardAt(index)
		cards = append(cards, playableCard)
	}
	return cards
}

// PlayCard plays the current player's card at cardIndex. chosenColor is
// consulted only for wild cards and defaults to red when nil. On a winning
// play the game finishes and the tally is recorded; otherwise the card's
// actions resolve and the turn advances.
func (e *Engine) PlayCard(cardIndex int, chosenColor color.Color) error {
	if e.finished {
		return consts.ErrorsGameFinished
	}
	player := e.CurrentPlayer()
	playedCard, ok := player.hand.CardAt(cardIndex)
	if !ok || !e.CanPlay(playedCard) {
		return consts.ErrorsInvalidMove
	}
	player.hand.RemoveAt(cardIndex)
	e.pile.Add(playedCard)

	if playedCard.Kind() == card.KindWild {
		if chosenColor == nil {
			chosenColor = color.Red
		}
		e.activeColor = chosenColor
		e.pile.ReplaceTop(card.NewColoredCard(playedCard, chosenColor))
		e.bus.ColorPicked.Emit(event.ColorPickedPayload{
			PlayerName: player.Name(),
			Color:      chosenColor,
		})
	} else {
		e.activeColor = playedCard.Color()
	}

	e.bus.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerName: player.Name(),
		Card:       playedCard,
		HandSize:   player.HandSize(),
	})

	// The flag only records a declared call; every new single-card hand
	// starts undeclared.
	if player.HandSize() == 1 {
		e.unoCalled = false
	}
	if player.NoCards() {
		e.finished = true
		e.winner = player
		if e.scores != nil {
			e.scores.Record(!player.IsBot())
		}
		e.bus.GameWon.Emit(event.GameWonPayload{
			PlayerName: player.Name(),
			Bot:        player.IsBot(),
		})
		return nil
	}

	e.performCardActions(playedCard)
	e.cycler.Next()
	return nil
}

func (e *Engine) performCardActions(playedCard card.Card) {
	for _, cardAction := range playedCard.Actions() {
		switch cardAction := cardAction.(type) {
		case action.SkipTurnAction:
			e.cycler.Next()
		case action.ReverseTurnsAction:
			e.cycler.Reverse()
		case action.DrawCardsAction:
			// A skip action has already moved the cycler onto the victim.
			victim := e.CurrentPlayer()
			drawn := e.drawWithRecycle(cardAction.Amount())
			victim.hand.AddCards(drawn)
			e.bus.CardsDrawn.Emit(event.CardsDrawnPayload{
				PlayerName: victim.Name(),
				Amount:     len(drawn),
				HandSize:   victim.HandSize(),
			})
		case action.PickColorAction:
			// Resolved in PlayCard, where the chosen color is known.
		}
	}
}

// DrawCard draws one card for the current player, recycling the discard
// pile if the deck is empty, and passes the turn. The drawn card is never
// auto-played.
func (e *Engine) DrawCard() (card.Card, error) {
	if e.finished {
		return nil, consts.ErrorsGameFinished
	}
	drawn := e.drawWithRecycle(1)
	if len(drawn) == 0 {
		return nil, consts.ErrorsNoCardsAvailable
	}
	player := e.CurrentPlayer()
	player.hand.AddCards(drawn)
	e.bus.CardsDrawn.Emit(event.CardsDrawnPayload{
		PlayerName: player.Name(),
		Amount:     1,
		HandSize:   player.HandSize(),
	})
	e.cycler.Next()
	return drawn[0], nil
}

func (e *Engine) drawWithRecycle(amount int) []card.Card {
	cards := make([]card.Card, 0, amount)
	for i := 0; i < amount; i++ {
		drawnCard, ok := e.deck.Draw()
		if !ok {
			e.reshuffleDiscard()
			drawnCard, ok = e.deck.Draw()
			if !ok {
				break
			}
		}
		cards = append(cards, drawnCard)
	}
	return cards
}

// reshuffleDiscard moves every discard card except the top back into the
// deck and shuffles. A no-op while the pile holds at most one card.
func (e *Engine) reshuffleDiscard() {
	recycled := e.pile.TakeAllButTop()
	if len(recycled) == 0 {
		return
	}
	for i, recycledCard := range recycled {
		// Wilds shed their declared color before going back in the deck.
		if coloredCard, ok := recycledCard.(card.ColoredCard); ok {
			recycled[i] = coloredCard.Wrapped()
		}
	}
	e.deck.AddCards(recycled)
	e.deck.Shuffle()
}

// CallUno declares UNO for the current player; legal only with exactly one
// card in hand.
func (e *Engine) CallUno() error {
	if e.finished {
		return consts.ErrorsGameFinished
	}
	player := e.CurrentPlayer()
	if player.HandSize() != 1 {
		return consts.ErrorsInvalidUnoCall
	}
	e.unoCalled = true
	e.bus.UnoCalled.Emit(event.UnoCalledPayload{PlayerName: player.Name()})
	return nil
}

func (e *Engine) Finished() bool {
	return e.finished
}
