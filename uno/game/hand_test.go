package game_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/feel-easy/uno-duel/uno/card"
	"github.com/feel-easy/uno-duel/uno/card/color"
	"github.com/feel-easy/uno-duel/uno/game"
)

func TestHandAddCards(t *testing.T) {
	hand := game.NewHand()
	hand.AddCards([]card.Card{
		card.NewNumberCard(color.Blue, 7),
		card.NewWildCard(),
	})
	require.Equal(t, []card.Card{
		card.NewNumberCard(color.Blue, 7),
		card.NewWildCard(),
	}, hand.Cards())
}

func TestHandEmpty(t *testing.T) {
	hand := game.NewHand()
	require.True(t, hand.Empty())
	hand.AddCards([]card.Card{card.NewWildCard()})
	require.False(t, hand.Empty())
}

func TestCardAt(t *testing.T) {
	hand := game.NewHand()
	hand.AddCards([]card.Card{
		card.NewNumberCard(color.Blue, 7),
		card.NewReverseCard(color.Yellow),
	})

	t.Run("returns_the_card_at_a_valid_index", func(t *testing.T) {
		found, ok := hand.CardAt(1)
		require.True(t, ok)
		require.Equal(t, card.NewReverseCard(color.Yellow), found)
	})

	t.Run("rejects_out_of_range_indexes", func(t *testing.T) {
		_, ok := hand.CardAt(-1)
		require.False(t, ok)
		_, ok = hand.CardAt(2)
		require.False(t, ok)
	})
}

func TestRemoveAt(t *testing.T) {
	t.Run("removes_exactly_one_card_preserving_order", func(t *testing.T) {
		hand := game.NewHand()
		hand.AddCards([]card.Card{
			card.NewWildCard(),
			card.NewReverseCard(color.Yellow),
			card.NewDrawTwoCard(color.Blue),
		})
		removed, ok := hand.RemoveAt(1)
		require.True(t, ok)
		require.Equal(t, card.NewReverseCard(color.Yellow), removed)
		require.Equal(t, []card.Card{
			card.NewWildCard(),
			card.NewDrawTwoCard(color.Blue),
		}, hand.Cards())
	})

	t.Run("does_nothing_for_an_invalid_index", func(t *testing.T) {
		hand := game.NewHand()
		hand.AddCards([]card.Card{card.NewWildCard()})
		_, ok := hand.RemoveAt(3)
		require.False(t, ok)
		require.Equal(t, 1, hand.Size())
	})
}

func TestPlayableIndexes(t *testing.T) {
	hand := game.NewHand()
	hand.AddCards([]card.Card{
		card.NewNumberCard(color.Blue, 5),
		card.NewNumberCard(color.Green, 8),
		card.NewNumberCard(color.Green, 7),
		card.NewWildCard(),
		card.NewReverseCard(color.Yellow),
		card.NewDrawTwoCard(color.Blue),
	})
	lastPlayedCard := card.NewNumberCard(color.Blue, 7)
	indexes := hand.PlayableIndexes(lastPlayedCard, color.Blue)
	require.Equal(t, []int{0, 2, 3, 5}, indexes)
}

func TestHandSize(t *testing.T) {
	hand := game.NewHand()
	require.Equal(t, 0, hand.Size())
	hand.AddCards([]card.Card{
		card.NewNumberCard(color.Green, 7),
		card.NewWildCard(),
	})
	require.Equal(t, 2, hand.Size())
}
