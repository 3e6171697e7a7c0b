package network

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"

	"github.com/feel-easy/uno-duel/consts"
	"github.com/feel-easy/uno-duel/database"
	"github.com/feel-easy/uno-duel/render"
	"github.com/feel-easy/uno-duel/uno/bot"
	"github.com/feel-easy/uno-duel/uno/card/color"
	"github.com/feel-easy/uno-duel/uno/event"
	"github.com/feel-easy/uno-duel/uno/game"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Network is interface of all kinds of network.
type Network interface {
	Serve() error
}

type Request struct {
	Action    string `json:"action"`
	CardIndex int    `json:"cardIndex"`
	Color     string `json:"color"`
}

type Response struct {
	Type  string           `json:"type"`
	Code  int              `json:"code,omitempty"`
	Msg   string           `json:"msg,omitempty"`
	State *render.GameView `json:"state,omitempty"`
}

// session is one browser connection playing one table against the bot.
// Engine commands run one at a time under the session lock; the lock also
// serializes websocket writes between the read loop and delayed bot moves.
type session struct {
	sync.Mutex
	conn   *websocket.Conn
	engine *game.Engine
	robot  *bot.Bot
	store  *database.ScoreStore
	closed bool
}

func newSession(conn *websocket.Conn, store *database.ScoreStore, seed int64) *session {
	rng := rand.New(rand.NewSource(seed))
	players := []*game.Player{
		game.NewPlayer(consts.HumanSeat, "You", false),
		game.NewPlayer(consts.BotSeat, "Bot", true),
	}
	s := &session{
		conn:   conn,
		engine: game.NewEngine(players, rng, store),
		robot:  bot.New(rng),
		store:  store,
	}
	s.engine.Bus().AddListener(s)
	return s
}

func (s *session) run() {
	s.Lock()
	s.engine.NewGame()
	s.writeState()
	s.Unlock()
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			break
		}
		req := Request{}
		if err := json.Unmarshal(data, &req); err != nil {
			s.Lock()
			s.writeError(consts.ErrorsUnknownAction)
			s.Unlock()
			continue
		}
		s.handle(req)
	}
	s.Lock()
	s.closed = true
	s.Unlock()
}

func (s *session) handle(req Request) {
	s.Lock()
	defer s.Unlock()
	if err := s.apply(req); err != nil {
		s.writeError(err)
	}
	s.writeState()
	s.scheduleBotMove()
}

func (s *session) apply(req Request) error {
	switch req.Action {
	case "new":
		s.engine.NewGame()
		return nil
	case "state":
		return nil
	case "play":
		if err := s.humanTurn(); err != nil {
			return err
		}
		chosenColor, err := parseColor(req.Color)
		if err != nil {
			return err
		}
		return s.engine.PlayCard(req.CardIndex, chosenColor)
	case "draw":
		if err := s.humanTurn(); err != nil {
			return err
		}
		_, err := s.engine.DrawCard()
		return err
	case "uno":
		if err := s.humanTurn(); err != nil {
			return err
		}
		return s.engine.CallUno()
	case "resetstats":
		return s.store.Reset()
	default:
		return consts.ErrorsUnknownAction
	}
}

func (s *session) humanTurn() error {
	if s.engine.Finished() {
		return consts.ErrorsGameFinished
	}
	if s.engine.CurrentPlayer().IsBot() {
		return consts.ErrorsNotYourTurn
	}
	return nil
}

func parseColor(name string) (color.Color, error) {
	if name == "" {
		return nil, nil
	}
	chosenColor, err := color.ByName(name)
	if err != nil {
		return nil, consts.ErrorsColorInvalid
	}
	return chosenColor, nil
}

// scheduleBotMove fires one delayed bot move when the bot holds the turn,
// chaining further moves while its action cards hand the turn back.
func (s *session) scheduleBotMove() {
	if s.closed || s.engine.Finished() || !s.engine.CurrentPlayer().IsBot() {
		return
	}
	async.Async(func() {
		time.Sleep(consts.BotMoveDelay)
		s.Lock()
		defer s.Unlock()
		if s.closed || s.engine.Finished() || !s.engine.CurrentPlayer().IsBot() {
			return
		}
		if err := s.robot.Move(s.engine); err != nil {
			// A stalled deck leaves the turn with the bot; don't reschedule.
			s.writeError(err)
			s.writeState()
			return
		}
		s.writeState()
		s.scheduleBotMove()
	})
}

func (s *session) writeState() {
	snapshot := s.engine.Snapshot()
	var playable []int
	if !snapshot.GameOver && !snapshot.Players[snapshot.Current].Bot {
		playable = s.engine.PlayableIndexes()
	}
	view := render.GameViewOf(snapshot, playable)
	s.write(Response{Type: "state", State: &view})
}

func (s *session) writeError(err error) {
	resp := Response{Type: "error", Msg: err.Error()}
	if typed, ok := err.(consts.Error); ok {
		resp.Code = typed.Code
	}
	s.write(resp)
}

func (s *session) writeEvent(text string) {
	s.write(Response{Type: "event", Msg: text})
}

func (s *session) write(resp Response) {
	if s.closed {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		log.Error(err)
		return
	}
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Error(err)
	}
}

// Bus listeners push one toast line per game event.

func (s *session) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	s.writeEvent(fmt.Sprintf("First card is %s", payload.Card.Label()))
}

func (s *session) OnCardPlayed(payload event.CardPlayedPayload) {
	s.writeEvent(fmt.Sprintf("%s played %s", payload.PlayerName, payload.Card.Label()))
}

func (s *session) OnCardsDrawn(payload event.CardsDrawnPayload) {
	s.writeEvent(fmt.Sprintf("%s drew %d card(s)", payload.PlayerName, payload.Amount))
}

func (s *session) OnColorPicked(payload event.ColorPickedPayload) {
	s.writeEvent(fmt.Sprintf("%s picked color %s", payload.PlayerName, payload.Color.Name()))
}

func (s *session) OnUnoCalled(payload event.UnoCalledPayload) {
	s.writeEvent(fmt.Sprintf("%s called UNO!", payload.PlayerName))
}

func (s *session) OnGameWon(payload event.GameWonPayload) {
	s.writeEvent(fmt.Sprintf("%s wins!", payload.PlayerName))
}
