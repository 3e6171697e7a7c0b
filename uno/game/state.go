package game

import (
	"fmt"
	"strings"

	"github.com/feel-easy/uno-duel/uno/card"
	"github.com/feel-easy/uno-duel/uno/card/color"
	"github.com/feel-easy/uno-duel/uno/event"
)

type PlayerState struct {
	ID   int
	Name string
	Bot  bool
	Hand []card.Card
}

// Snapshot is a read-only copy of the table for rendering. Mutating it
// never touches engine state.
type Snapshot struct {
	Players       []PlayerState
	Current       int
	Direction     int
	ActiveColor   color.Color
	LastPlayed    card.Card
	DeckRemaining int
	DiscardSize   int
	GameOver      bool
	Winner        string
	UnoCalled     bool
	Wins          int
	Losses        int
	History       []event.Entry
}

func (e *Engine) Snapshot() Snapshot {
	players := make([]PlayerState, len(e.players))
	for i, player := range e.players {
		players[i] = PlayerState{
			ID:   player.ID(),
			Name: player.Name(),
			Bot:  player.IsBot(),
			Hand: player.Hand(),
		}
	}
	var wins, losses int
	if e.scores != nil {
		wins, losses = e.scores.Stats()
	}
	winner := ""
	if e.winner != nil {
		winner = e.winner.Name()
	}
	return Snapshot{
		Players:       players,
		Current:       e.cycler.Current(),
		Direction:     e.cycler.Direction(),
		ActiveColor:   e.activeColor,
		LastPlayed:    e.pile.Top(),
		DeckRemaining: e.deck.Remaining(),
		DiscardSize:   e.pile.Size(),
		GameOver:      e.finished,
		Winner:        winner,
		UnoCalled:     e.unoCalled,
		Wins:          wins,
		Losses:        losses,
		History:       e.history.Entries(),
	}
}

func (s Snapshot) String() string {
	var statuses []string
	for _, player := range s.Players {
		statuses = append(statuses, fmt.Sprintf("%s (%d card(s))", player.Name, len(player.Hand)))
	}
	lines := []string{
		fmt.Sprintf("Last played card: %s", s.LastPlayed),
		fmt.Sprintf("Turn order: %s", strings.Join(statuses, ", ")),
	}
	return strings.Join(lines, "\n")
}
