package game

import (
	"github.com/feel-easy/uno-duel/uno/card"
)

type Player struct {
	id   int
	name string
	bot  bool
	hand *Hand
}

func NewPlayer(id int, name string, bot bool) *Player {
	return &Player{
		id:   id,
		name: name,
		bot:  bot,
		hand: NewHand(),
	}
}

func (p *Player) ID() int {
	return p.id
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) IsBot() bool {
	return p.bot
}

func (p *Player) Hand() []card.Card {
	return p.hand.Cards()
}

func (p *Player) HandSize() int {
	return p.hand.Size()
}

func (p *Player) NoCards() bool {
	return p.hand.Empty()
}

func (p *Player) clearHand() {
	p.hand = NewHand()
}
