package game

import (
	"math/rand"
	"sync"

	"github.com/feel-easy/uno-duel/uno/card"
	"github.com/feel-easy/uno-duel/uno/card/color"
)

// Deck is the draw pile. The top card is cards[0]; AddCards appends to the
// bottom, which is where the starting-card search returns non-number cards.
type Deck struct {
	sync.Mutex
	cards []card.Card
	rng   *rand.Rand
}

func NewDeck(rng *rand.Rand) *Deck {
	deck := &Deck{rng: rng}
	deck.Reset()
	return deck
}

func (d *Deck) Reset() {
	d.Lock()
	defer d.Unlock()
	d.cards = standardCards()
	d.shuffle()
}

// Shuffle permutes the remaining cards in place.
func (d *Deck) Shuffle() {
	d.Lock()
	defer d.Unlock()
	d.shuffle()
}

// shuffle is Fisher-Yates; every permutation is equally likely given an
// unbiased source.
func (d *Deck) shuffle() {
	for i := len(d.cards) - 1; i >= 1; i-- {
		j := d.rng.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the top card. The second result is false when
// the deck is empty; drawing never fails otherwise.
func (d *Deck) Draw() (card.Card, bool) {
	d.Lock()
	defer d.Unlock()
	if len(d.cards) == 0 {
		return nil, false
	}
	top := d.cards[0]
	d.cards = d.cards[1:]
	return top, true
}

// DrawMany draws up to amount cards, stopping early if the deck empties.
func (d *Deck) DrawMany(amount int) []card.Card {
	d.Lock()
	defer d.Unlock()
	if amount > len(d.cards) {
		amount = len(d.cards)
	}
	cards := make([]card.Card, amount)
	copy(cards, d.cards[:amount])
	d.cards = d.cards[amount:]
	return cards
}

// AddCards appends cards to the bottom without shuffling. Callers
// reconstituting the deck from the discard pile shuffle afterwards.
func (d *Deck) AddCards(cards []card.Card) {
	d.Lock()
	defer d.Unlock()
	d.cards = append(d.cards, cards...)
}

func (d *Deck) Remaining() int {
	d.Lock()
	defer d.Unlock()
	return len(d.cards)
}

// Validate recounts the card categories against the standard distribution:
// 76 number, 24 action and 8 wild cards. Diagnostic only.
func (d *Deck) Validate() bool {
	d.Lock()
	defer d.Unlock()
	var numbers, actions, wilds int
	for _, c := range d.cards {
		switch c.Kind() {
		case card.KindNumber:
			numbers++
		case card.KindAction:
			actions++
		case card.KindWild:
			wilds++
		}
	}
	return numbers == 76 && actions == 24 && wilds == 8 &&
		len(d.cards) == 108
}

// standardCards builds the 108-card set in deterministic order: for each
// color one 0, two each of 1-9, then the action pairs, then the wilds.
func standardCards() []card.Card {
	cards := make([]card.Card, 0, 108)
	for _, cardColor := range buildColors {
		cards = append(cards, createColorCards(cardColor)...)
	}
	cards = append(cards, createWildCards()...)
	return cards
}

var buildColors = []color.Color{color.Red, color.Blue, color.Green, color.Yellow}

func createColorCards(cardColor color.Color) []card.Card {
	cards := make([]card.Card, 0, 25)
	cards = append(cards, card.NewNumberCard(cardColor, 0))
	for number := 1; number <= 9; number++ {
		numberCard := card.NewNumberCard(cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}

	skipCard := card.NewSkipCard(cardColor)
	reverseCard := card.NewReverseCard(cardColor)
	drawTwoCard := card.NewDrawTwoCard(cardColor)
	cards = append(cards,
		skipCard, skipCard,
		reverseCard, reverseCard,
		drawTwoCard, drawTwoCard,
	)
	return cards
}

func createWildCards() []card.Card {
	wildCard := card.NewWildCard()
	wildDrawFourCard := card.NewWildDrawFourCard()
	return []card.Card{
		wildCard, wildCard, wildCard, wildCard,
		wildDrawFourCard, wildDrawFourCard, wildDrawFourCard, wildDrawFourCard,
	}
}
