package render

import (
	"github.com/feel-easy/uno-duel/uno/card"
	"github.com/feel-easy/uno-duel/uno/event"
	"github.com/feel-easy/uno-duel/uno/game"
)

// CardView is the wire shape of one card. Symbols mirror the card faces;
// clients style them however they like.
type CardView struct {
	Kind   string `json:"kind"`
	Color  string `json:"color,omitempty"`
	Rank   int    `json:"rank"`
	Label  string `json:"label"`
	Symbol string `json:"symbol"`
}

func CardViewOf(c card.Card) CardView {
	switch c := c.(type) {
	case card.NumberCard:
		return CardView{
			Kind:   "number",
			Color:  c.Color().Name(),
			Rank:   c.Number(),
			Label:  c.Label(),
			Symbol: "",
		}
	case card.SkipCard:
		return CardView{Kind: "skip", Color: c.Color().Name(), Label: c.Label(), Symbol: "(/)"}
	case card.ReverseCard:
		return CardView{Kind: "reverse", Color: c.Color().Name(), Label: c.Label(), Symbol: "<=>"}
	case card.DrawTwoCard:
		return CardView{Kind: "draw-two", Color: c.Color().Name(), Label: c.Label(), Symbol: "+2"}
	case card.WildCard:
		return CardView{Kind: "wild", Label: c.Label(), Symbol: "(*)"}
	case card.WildDrawFourCard:
		return CardView{Kind: "wild-draw-four", Label: c.Label(), Symbol: "+4"}
	case card.ColoredCard:
		// A wild on the pile carries its declared color.
		view := CardViewOf(c.Wrapped())
		view.Color = c.Color().Name()
		view.Label = c.Label()
		return view
	default:
		return CardView{Kind: "unknown", Label: c.Label()}
	}
}

func CardViewsOf(cards []card.Card) []CardView {
	views := make([]CardView, len(cards))
	for i, c := range cards {
		views[i] = CardViewOf(c)
	}
	return views
}

type PlayerView struct {
	ID       int        `json:"id"`
	Name     string     `json:"name"`
	Bot      bool       `json:"bot"`
	HandSize int        `json:"handSize"`
	Hand     []CardView `json:"hand"`
}

type GameView struct {
	Players       []PlayerView  `json:"players"`
	Current       int           `json:"current"`
	Direction     int           `json:"direction"`
	ActiveColor   string        `json:"activeColor,omitempty"`
	LastPlayed    *CardView     `json:"lastPlayed,omitempty"`
	DeckRemaining int           `json:"deckRemaining"`
	GameOver      bool          `json:"gameOver"`
	Winner        string        `json:"winner,omitempty"`
	UnoCalled     bool          `json:"unoCalled"`
	Wins          int           `json:"wins"`
	Losses        int           `json:"losses"`
	Playable      []int         `json:"playable"`
	History       []event.Entry `json:"history"`
}

// GameViewOf converts an engine snapshot for the wire. playable carries the
// hand positions the current player may play, when it is a human's turn.
func GameViewOf(s game.Snapshot, playable []int) GameView {
	players := make([]PlayerView, len(s.Players))
	for i, player := range s.Players {
		players[i] = PlayerView{
			ID:       player.ID,
			Name:     player.Name,
			Bot:      player.Bot,
			HandSize: len(player.Hand),
			Hand:     CardViewsOf(player.Hand),
		}
	}
	view := GameView{
		Players:       players,
		Current:       s.Current,
		Direction:     s.Direction,
		DeckRemaining: s.DeckRemaining,
		GameOver:      s.GameOver,
		Winner:        s.Winner,
		UnoCalled:     s.UnoCalled,
		Wins:          s.Wins,
		Losses:        s.Losses,
		Playable:      playable,
		History:       s.History,
	}
	if s.ActiveColor != nil {
		view.ActiveColor = s.ActiveColor.Name()
	}
	if s.LastPlayed != nil {
		lastPlayed := CardViewOf(s.LastPlayed)
		view.LastPlayed = &lastPlayed
	}
	return view
}
