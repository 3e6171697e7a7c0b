package game_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/feel-easy/uno-duel/uno/card"
	"github.com/feel-easy/uno-duel/uno/card/color"
	"github.com/feel-easy/uno-duel/uno/game"
)

func TestPileCards(t *testing.T) {
	pile := game.NewPile()
	pile.Add(card.NewNumberCard(color.Blue, 5))
	pile.Add(card.NewNumberCard(color.Green, 5))
	pile.Add(card.NewNumberCard(color.Green, 7))
	require.Equal(t, []card.Card{
		card.NewNumberCard(color.Blue, 5),
		card.NewNumberCard(color.Green, 5),
		card.NewNumberCard(color.Green, 7),
	}, pile.Cards())
	require.Equal(t, 3, pile.Size())
}

func TestReplaceTop(t *testing.T) {
	pile := game.NewPile()
	pile.Add(card.NewNumberCard(color.Blue, 5))
	pile.Add(card.NewWildCard())
	pile.ReplaceTop(card.NewColoredCard(card.NewWildCard(), color.Yellow))
	require.Equal(t, []card.Card{
		card.NewNumberCard(color.Blue, 5),
		card.NewColoredCard(card.NewWildCard(), color.Yellow),
	}, pile.Cards())
}

func TestTop(t *testing.T) {
	pile := game.NewPile()
	require.Nil(t, pile.Top())
	pile.Add(card.NewNumberCard(color.Blue, 5))
	pile.Add(card.NewNumberCard(color.Green, 7))
	require.Equal(t, card.NewNumberCard(color.Green, 7), pile.Top())
}

func TestTakeAllButTop(t *testing.T) {
	t.Run("keeps_the_top_card_as_singleton_discard", func(t *testing.T) {
		pile := game.NewPile()
		pile.Add(card.NewNumberCard(color.Blue, 5))
		pile.Add(card.NewNumberCard(color.Green, 5))
		pile.Add(card.NewNumberCard(color.Green, 7))

		recycled := pile.TakeAllButTop()
		require.ElementsMatch(t, []card.Card{
			card.NewNumberCard(color.Blue, 5),
			card.NewNumberCard(color.Green, 5),
		}, recycled)
		require.Equal(t, []card.Card{card.NewNumberCard(color.Green, 7)}, pile.Cards())
	})

	t.Run("is_a_no_op_at_one_or_fewer_cards", func(t *testing.T) {
		pile := game.NewPile()
		require.Nil(t, pile.TakeAllButTop())
		pile.Add(card.NewWildCard())
		require.Nil(t, pile.TakeAllButTop())
		require.Equal(t, 1, pile.Size())
	})
}
