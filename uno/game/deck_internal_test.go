package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/feel-easy/uno-duel/uno/card"
	"github.com/feel-easy/uno-duel/uno/card/color"
)

// The generation order is fixed: per color one 0, pairs of 1-9, then the
// action pairs; colors red, blue, green, yellow; wilds last.
func TestStandardCardsOrder(t *testing.T) {
	cards := standardCards()
	require.Len(t, cards, 108)

	for colorIndex, cardColor := range []color.Color{color.Red, color.Blue, color.Green, color.Yellow} {
		segment := cards[colorIndex*25 : (colorIndex+1)*25]

		require.Equal(t, card.NewNumberCard(cardColor, 0), segment[0])
		for number := 1; number <= 9; number++ {
			require.Equal(t, card.NewNumberCard(cardColor, number), segment[2*number-1])
			require.Equal(t, card.NewNumberCard(cardColor, number), segment[2*number])
		}
		require.Equal(t, []card.Card{
			card.NewSkipCard(cardColor), card.NewSkipCard(cardColor),
			card.NewReverseCard(cardColor), card.NewReverseCard(cardColor),
			card.NewDrawTwoCard(cardColor), card.NewDrawTwoCard(cardColor),
		}, segment[19:25])
	}

	for i := 100; i < 104; i++ {
		require.Equal(t, card.NewWildCard(), cards[i])
	}
	for i := 104; i < 108; i++ {
		require.Equal(t, card.NewWildDrawFourCard(), cards[i])
	}
}
