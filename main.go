package main

import (
	"flag"
	"fmt"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"

	"github.com/feel-easy/uno-duel/database"
	"github.com/feel-easy/uno-duel/network"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	addr := flag.String("addr", ":9999", "listen address")
	scores := flag.String("scores", "uno_scores.json", "win/loss score file")
	seed := flag.Int64("seed", 0, "fixed random seed, 0 for time-based")
	flag.Parse()

	store := database.NewScoreStore("uno-duel", *scores)
	server := network.NewWebsocketServer(*addr, store, *seed)
	log.Error(server.Serve())
}
