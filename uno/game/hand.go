package game

import (
	"github.com/feel-easy/uno-duel/uno/card"
	"github.com/feel-easy/uno-duel/uno/card/color"
)

// Hand keeps cards in insertion order; clients select cards by index.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) CardAt(index int) (card.Card, bool) {
	if index < 0 || index >= len(h.cards) {
		return nil, false
	}
	return h.cards[index], true
}

func (h *Hand) RemoveAt(index int) (card.Card, bool) {
	removed, ok := h.CardAt(index)
	if !ok {
		return nil, false
	}
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return removed, true
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) Size() int {
	return len(h.cards)
}

// PlayableIndexes returns the hand positions whose cards may be played on
// lastPlayedCard under activeColor, in hand order.
func (h *Hand) PlayableIndexes(lastPlayedCard card.Card, activeColor color.Color) []int {
	var indexes []int
	for index, candidateCard := range h.cards {
		if Playable(candidateCard, lastPlayedCard, activeColor) {
			indexes = append(indexes, index)
		}
	}
	return indexes
}
