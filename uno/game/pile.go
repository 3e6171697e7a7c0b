package game

import (
	"sync"

	"github.com/feel-easy/uno-duel/uno/card"
)

// Pile is the face-up discard pile; its top card is the last played card.
type Pile struct {
	sync.Mutex
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(card card.Card) {
	p.Lock()
	defer p.Unlock()
	p.cards = append(p.cards, card)
}

func (p *Pile) Cards() []card.Card {
	p.Lock()
	defer p.Unlock()
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) ReplaceTop(card card.Card) {
	p.Lock()
	defer p.Unlock()
	p.cards[len(p.cards)-1] = card
}

func (p *Pile) Top() card.Card {
	p.Lock()
	defer p.Unlock()
	if len(p.cards) == 0 {
		return nil
	}
	return p.cards[len(p.cards)-1]
}

func (p *Pile) Size() int {
	p.Lock()
	defer p.Unlock()
	return len(p.cards)
}

// TakeAllButTop removes and returns every card except the top one, which
// stays as the singleton discard. Returns nil when there is nothing to
// recycle.
func (p *Pile) TakeAllButTop() []card.Card {
	p.Lock()
	defer p.Unlock()
	if len(p.cards) <= 1 {
		return nil
	}
	recycled := make([]card.Card, len(p.cards)-1)
	copy(recycled, p.cards[:len(p.cards)-1])
	p.cards = []card.Card{p.cards[len(p.cards)-1]}
	return recycled
}
