package network

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/ratel-online/core/log"

	"github.com/feel-easy/uno-duel/database"
)

type Websocket struct {
	addr  string
	store *database.ScoreStore
	seed  int64
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// NewWebsocketServer serves one table per connection on /ws. A zero seed
// makes every session draw fresh randomness.
func NewWebsocketServer(addr string, store *database.ScoreStore, seed int64) Websocket {
	return Websocket{addr: addr, store: store, seed: seed}
}

func (w Websocket) Serve() error {
	http.HandleFunc("/ws", w.serveWs)
	log.Infof("Websocket server listening on %s\n", w.addr)
	return http.ListenAndServe(w.addr, nil)
}

func (w Websocket) serveWs(rw http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(rw, r, nil)
	if err != nil {
		log.Error(err)
		return
	}
	defer conn.Close()
	log.Info("new player connected! ")
	seed := w.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	newSession(conn, w.store, seed).run()
}
