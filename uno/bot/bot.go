package bot

import (
	"math/rand"

	"github.com/feel-easy/uno-duel/uno/card"
	"github.com/feel-easy/uno-duel/uno/card/color"
	"github.com/feel-easy/uno-duel/uno/game"
)

// Bot plays one move per call: a playable card when it has one, a draw
// otherwise. The policy is a pure function of the current state modulo the
// random source.
type Bot struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Bot {
	return &Bot{rng: rng}
}

func (b *Bot) Move(engine *game.Engine) error {
	playable := engine.PlayableIndexes()
	if len(playable) == 0 {
		_, err := engine.DrawCard()
		return err
	}
	hand := engine.CurrentPlayer().Hand()
	index := ChooseIndex(hand, playable, b.rng)
	var chosenColor color.Color
	if hand[index].Kind() == card.KindWild {
		chosenColor = PickColor(remaining(hand, index))
	}
	return engine.PlayCard(index, chosenColor)
}

// ChooseIndex picks uniformly among the playable action cards, falling back
// to wild cards, then number cards.
func ChooseIndex(hand []card.Card, playable []int, rng *rand.Rand) int {
	var actions, wilds, numbers []int
	for _, index := range playable {
		switch hand[index].Kind() {
		case card.KindAction:
			actions = append(actions, index)
		case card.KindWild:
			wilds = append(wilds, index)
		case card.KindNumber:
			numbers = append(numbers, index)
		}
	}
	pool := numbers
	if len(wilds) > 0 {
		pool = wilds
	}
	if len(actions) > 0 {
		pool = actions
	}
	return pool[rng.Intn(len(pool))]
}

// PickColor returns the color held most often in hand; ties and empty
// hands resolve by the fixed precedence order.
func PickColor(hand []card.Card) color.Color {
	counts := make(map[color.Color]int)
	for _, handCard := range hand {
		if handCard.Color() != nil {
			counts[handCard.Color()]++
		}
	}
	best := color.Precedence[0]
	for _, candidate := range color.Precedence[1:] {
		if counts[candidate] > counts[best] {
			best = candidate
		}
	}
	return best
}

func remaining(hand []card.Card, played int) []card.Card {
	cards := make([]card.Card, 0, len(hand)-1)
	cards = append(cards, hand[:played]...)
	cards = append(cards, hand[played+1:]...)
	return cards
}
