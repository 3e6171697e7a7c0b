package event

import (
	"fmt"
	"time"
)

// Entry is one line of the game log shown to clients.
type Entry struct {
	Time        time.Time `json:"time"`
	Description string    `json:"description"`
	Actor       string    `json:"actor"`
	HandSize    int       `json:"handSize"`
}

// History listens on every emitter and keeps the most recent entries, oldest
// dropped first.
type History struct {
	limit   int
	entries []Entry
}

func NewHistory(limit int) *History {
	return &History{
		limit:   limit,
		entries: make([]Entry, 0, limit),
	}
}

func (h *History) Entries() []Entry {
	entries := make([]Entry, len(h.entries))
	copy(entries, h.entries)
	return entries
}

func (h *History) Clear() {
	h.entries = h.entries[:0]
}

func (h *History) add(actor string, handSize int, format string, args ...interface{}) {
	entry := Entry{
		Time:        time.Now(),
		Description: fmt.Sprintf(format, args...),
		Actor:       actor,
		HandSize:    handSize,
	}
	h.entries = append(h.entries, entry)
	if len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
}

func (h *History) OnFirstCardPlayed(payload FirstCardPlayedPayload) {
	h.add("", 0, "First card is %s", payload.Card.Label())
}

func (h *History) OnCardPlayed(payload CardPlayedPayload) {
	h.add(payload.PlayerName, payload.HandSize, "%s played %s", payload.PlayerName, payload.Card.Label())
}

func (h *History) OnCardsDrawn(payload CardsDrawnPayload) {
	h.add(payload.PlayerName, payload.HandSize, "%s drew %d card(s)", payload.PlayerName, payload.Amount)
}

func (h *History) OnColorPicked(payload ColorPickedPayload) {
	h.add(payload.PlayerName, 0, "%s picked color %s", payload.PlayerName, payload.Color.Name())
}

func (h *History) OnUnoCalled(payload UnoCalledPayload) {
	h.add(payload.PlayerName, 1, "%s called UNO!", payload.PlayerName)
}

func (h *History) OnGameWon(payload GameWonPayload) {
	h.add(payload.PlayerName, 0, "%s wins!", payload.PlayerName)
}
