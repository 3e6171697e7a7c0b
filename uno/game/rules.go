package game

import (
	"github.com/feel-easy/uno-duel/uno/card"
	"github.com/feel-easy/uno-duel/uno/card/color"
)

// Playable reports whether candidateCard may be placed on lastPlayedCard
// while activeColor is in effect. A nil lastPlayedCard (empty discard) or a
// nil activeColor (wild seeded the discard before any color was declared)
// makes every card playable. Matching an action card by subtype or a number
// card by rank works across colors.
func Playable(candidateCard card.Card, lastPlayedCard card.Card, activeColor color.Color) bool {
	if lastPlayedCard == nil || activeColor == nil {
		return true
	}
	if candidateCard.Kind() == card.KindWild {
		return true
	}
	if candidateCard.Color() == activeColor {
		return true
	}

	switch candidateCard := candidateCard.(type) {
	case card.DrawTwoCard:
		_, isDrawTwoCard := lastPlayedCard.(card.DrawTwoCard)
		return isDrawTwoCard
	case card.ReverseCard:
		_, isReverseCard := lastPlayedCard.(card.ReverseCard)
		return isReverseCard
	case card.SkipCard:
		_, isSkipCard := lastPlayedCard.(card.SkipCard)
		return isSkipCard
	case card.NumberCard:
		lastPlayedCard, isNumberCard := lastPlayedCard.(card.NumberCard)
		return isNumberCard && lastPlayedCard.Number() == candidateCard.Number()
	default:
		return false
	}
}
