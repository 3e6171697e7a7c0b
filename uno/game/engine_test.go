package game_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/feel-easy/uno-duel/consts"
	"github.com/feel-easy/uno-duel/uno/card"
	"github.com/feel-easy/uno-duel/uno/game"
)

type fakeScores struct {
	wins   int
	losses int
}

func (f *fakeScores) Record(humanWon bool) {
	if humanWon {
		f.wins++
	} else {
		f.losses++
	}
}

func (f *fakeScores) Stats() (int, int) {
	return f.wins, f.losses
}

func newTestEngine(seed int64) (*game.Engine, *fakeScores) {
	scores := &fakeScores{}
	players := []*game.Player{
		game.NewPlayer(0, "You", false),
		game.NewPlayer(1, "Bot", true),
	}
	engine := game.NewEngine(players, rand.New(rand.NewSource(seed)), scores)
	return engine, scores
}

func totalCards(s game.Snapshot) int {
	total := s.DeckRemaining + s.DiscardSize
	for _, player := range s.Players {
		total += len(player.Hand)
	}
	return total
}

func TestNewGame(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		engine, _ := newTestEngine(seed)
		engine.NewGame()
		s := engine.Snapshot()

		require.Equal(t, 108, totalCards(s))
		require.Equal(t, 1, s.DiscardSize)
		for _, player := range s.Players {
			require.Len(t, player.Hand, 7)
		}
		require.Equal(t, 0, s.Current)
		require.Equal(t, 1, s.Direction)
		require.False(t, s.GameOver)
		require.False(t, s.UnoCalled)
		require.Equal(t, card.KindNumber, s.LastPlayed.Kind())
		require.Equal(t, s.LastPlayed.Color(), s.ActiveColor)
		require.NotEmpty(t, s.History)
	}
}

func TestNewGameIsRepeatable(t *testing.T) {
	first, _ := newTestEngine(11)
	second, _ := newTestEngine(11)
	first.NewGame()
	second.NewGame()
	require.Equal(t, first.Snapshot().Players, second.Snapshot().Players)
	require.Equal(t, first.Snapshot().LastPlayed, second.Snapshot().LastPlayed)
}

func TestDrawCard(t *testing.T) {
	engine, _ := newTestEngine(3)
	engine.NewGame()
	before := engine.Snapshot()

	drawnCard, err := engine.DrawCard()
	require.NoError(t, err)
	require.NotNil(t, drawnCard)

	after := engine.Snapshot()
	require.Equal(t, 108, totalCards(after))
	require.Equal(t, before.DeckRemaining-1, after.DeckRemaining)
	require.Len(t, after.Players[0].Hand, 8)
	require.Equal(t, 1, after.Current, "drawing passes the turn")
}

func TestPlayCardRejectsBadIndexes(t *testing.T) {
	engine, _ := newTestEngine(3)
	engine.NewGame()
	require.Equal(t, consts.ErrorsInvalidMove, engine.PlayCard(-1, nil))
	require.Equal(t, consts.ErrorsInvalidMove, engine.PlayCard(7, nil))
}

func TestPlayCardKeepsCardCountInvariant(t *testing.T) {
	engine, _ := newTestEngine(5)
	engine.NewGame()
	indexes := engine.PlayableIndexes()
	if len(indexes) == 0 {
		t.Skip("no playable card for this seed")
	}
	require.NoError(t, engine.PlayCard(indexes[0], nil))
	s := engine.Snapshot()
	require.Equal(t, 108, totalCards(s))
	require.Len(t, s.Players[0].Hand, 6)
}

func TestCallUnoWithFullHandFails(t *testing.T) {
	engine, _ := newTestEngine(3)
	engine.NewGame()
	require.Equal(t, consts.ErrorsInvalidUnoCall, engine.CallUno())
	require.False(t, engine.Snapshot().UnoCalled)
}

func TestPlayableCardsMatchHandOrder(t *testing.T) {
	engine, _ := newTestEngine(9)
	engine.NewGame()
	indexes := engine.PlayableIndexes()
	cards := engine.PlayableCards()
	require.Len(t, cards, len(indexes))
	hand := engine.Snapshot().Players[0].Hand
	for i, index := range indexes {
		require.True(t, hand[index].Equal(cards[i]))
		require.True(t, engine.CanPlay(cards[i]))
	}
}
