package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/minaorangina/sweep/engine"
)

var (
	ErrUnknownGameID   = errors.New("unknown game ID")
	ErrDuplicateGameID = errors.New("game ID already in use")
	ErrNilGame         = errors.New("cannot store a nil game")
)

type GameStore interface {
	FindGame(gameID string) engine.GameEngine
	AddGame(ge engine.GameEngine) error
	RemoveGame(gameID string) error
	Count() int
}

// InMemoryGameStore maps game id to game engine
type InMemoryGameStore struct {
	mu    sync.RWMutex
	games map[string]engine.GameEngine
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		games: map[string]engine.GameEngine{},
	}
}

func (s *InMemoryGameStore) FindGame(ID string) engine.GameEngine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	game, ok := s.games[ID]
	if !ok {
		return nil
	}

	return game
}

func (s *InMemoryGameStore) AddGame(ge engine.GameEngine) error {
	if ge == nil {
		return ErrNilGame
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[ge.ID()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateGameID, ge.ID())
	}

	s.games[ge.ID()] = ge
	return nil
}

func (s *InMemoryGameStore) RemoveGame(ID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[ID]; !exists {
		return fmt.Errorf("%w: %s", ErrUnknownGameID, ID)
	}

	delete(s.games, ID)
	return nil
}

// Count is the number of games in the store
func (s *InMemoryGameStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}
