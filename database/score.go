package database

import (
	"os"
	"sync"

	"github.com/awesome-cap/hashmap"
	jsoniter "github.com/json-iterator/go"
	"github.com/ratel-online/core/log"

	"github.com/feel-easy/uno-duel/consts"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var records = hashmap.New()

// Score is the persisted win/loss counter pair.
type Score struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

// ScoreStore keeps one Score record per key in memory and snapshots it to a
// JSON file. A missing or unreadable file degrades to a zero score; saving
// failures are logged and swallowed. Persistence is never fatal.
type ScoreStore struct {
	sync.Mutex
	key  string
	path string
}

func NewScoreStore(key, path string) *ScoreStore {
	store := &ScoreStore{key: key, path: path}
	store.load()
	return store
}

func (s *ScoreStore) load() {
	score := Score{}
	data, err := os.ReadFile(s.path)
	if err == nil {
		if err = json.Unmarshal(data, &score); err != nil {
			log.Infof("score file %s unreadable, starting from zero: %v\n", s.path, err)
			score = Score{}
		}
	}
	records.Set(s.key, score)
}

func (s *ScoreStore) save() error {
	score := s.get()
	data, err := json.Marshal(score)
	if err == nil {
		err = os.WriteFile(s.path, data, 0644)
	}
	if err != nil {
		log.Error(err)
		return consts.ErrorsPersistence
	}
	return nil
}

func (s *ScoreStore) get() Score {
	if v, ok := records.Get(s.key); ok {
		return v.(Score)
	}
	return Score{}
}

// Record adds one finished game to the tally and snapshots it.
func (s *ScoreStore) Record(humanWon bool) {
	s.Lock()
	defer s.Unlock()
	score := s.get()
	if humanWon {
		score.Wins++
	} else {
		score.Losses++
	}
	records.Set(s.key, score)
	_ = s.save()
}

func (s *ScoreStore) Stats() (wins, losses int) {
	s.Lock()
	defer s.Unlock()
	score := s.get()
	return score.Wins, score.Losses
}

// Reset zeroes the tally and snapshots it.
func (s *ScoreStore) Reset() error {
	s.Lock()
	defer s.Unlock()
	records.Set(s.key, Score{})
	return s.save()
}
